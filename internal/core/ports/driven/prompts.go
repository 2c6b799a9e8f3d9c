package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files, embed them in the binary,
// or fetch them from a remote configuration service.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return a
	// sensible default or an error, depending on whether the prompt
	// is required.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	Reload()
}

// Well-known prompt names used throughout the answering pipeline.
// These constants define the contract between prompt consumers and providers.
const (
	// PromptToolSelection is the system prompt instructing the model to
	// choose between document context and web search. No placeholders.
	PromptToolSelection = "tool_selection"

	// PromptAnswerSystem is the system prompt for the final answer call.
	// No placeholders.
	PromptAnswerSystem = "answer_system"

	// PromptDocumentAnswer builds the document-only final prompt.
	// Expects %s (question) and %s (document context).
	PromptDocumentAnswer = "document_answer"

	// PromptWebAnswer builds the final prompt combining document context
	// with web results. Expects %s (question), %s (document context) and
	// %s (external context).
	PromptWebAnswer = "web_answer"

	// PromptQueryGeneration asks for diverse queries covering the key
	// aspects of a paper. Expects %d (count) twice.
	PromptQueryGeneration = "query_generation"

	// PromptQueryGenerationSystem is the system prompt for query
	// generation. No placeholders.
	PromptQueryGenerationSystem = "query_generation_system"

	// PromptDeepSummary is the structured summarization prompt.
	// Expects %s (accumulated context).
	PromptDeepSummary = "deep_summary"

	// PromptDeepSummarySystem is the system prompt for summarization.
	// No placeholders.
	PromptDeepSummarySystem = "deep_summary_system"
)

// PromptStoreAware is an optional interface for services that can use
// custom prompts injected after construction.
type PromptStoreAware interface {
	// SetPromptStore sets the prompt store for loading customisable
	// prompts. If not set, the service uses hardcoded defaults.
	SetPromptStore(store PromptStore)
}
