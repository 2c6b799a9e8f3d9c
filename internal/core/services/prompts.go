package services

// Fallback prompts used when no PromptStore is configured. The file-based
// prompt store carries the same defaults as user-editable files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
const (
	defaultToolSelectionPrompt = `You are a helpful research assistant. Based on the question, decide whether to:
1. Use the provided document context to answer (use answer_from_document)
2. Search the web for recent or additional information (use google_search)
Choose the appropriate function based on the nature of the question.`

	defaultAnswerSystemPrompt = `You are a helpful research assistant. Provide a clear and accurate answer based on the available information. When using external sources, clearly indicate this with proper citations.`

	defaultDocumentAnswerPrompt = `Question: %s

Document Context: %s

Please answer the question based on the document context above.`

	defaultWebAnswerPrompt = `Question: %s

Document Context: %s

Additional Information from Web Search:
%s

Please provide a comprehensive answer using both the document context and the external information.
Clearly cite your sources when using external information.`

	defaultQueryGenerationSystemPrompt = `You are a research assistant that generates diverse search queries to explore the key aspects of a research paper.`

	defaultQueryGenerationPrompt = `Generate %d diverse search queries that together cover the key aspects of a research paper: its main contribution, methodology, experimental results, limitations, and related work.
Return exactly %d queries, one per line, with no numbering and no extra text.`

	defaultDeepSummarySystemPrompt = `You are a research assistant that writes structured, faithful summaries of academic papers. Do not invent facts that are not present in the provided content.`

	defaultDeepSummaryPrompt = `Write a structured summary of the research paper based on the following content.
Cover: the problem addressed, the proposed approach, key results, and limitations.

Content:
%s

Summary:`
)
