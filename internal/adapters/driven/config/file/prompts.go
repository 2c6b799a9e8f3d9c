package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/inquiro-labs/inquiro/internal/core/ports/driven"
)

// Ensure PromptStore implements the interface.
var _ driven.PromptStore = (*PromptStore)(nil)

// PromptStore loads pipeline prompts from user-editable files on disk,
// with fallback to embedded defaults.
//
// The store uses lazy initialisation - files are only created when first
// accessed, not in the constructor. This makes testing easier and avoids
// unexpected I/O.
type PromptStore struct {
	mu        sync.RWMutex
	promptDir string
	cache     map[string]string
	initOnce  sync.Once
	initErr   error
}

// defaultPrompts contains embedded default prompts. These are used when
// user files don't exist and as the initial content for new files.
//
//nolint:lll // Prompt content is intentionally long and should not be wrapped.
var defaultPrompts = map[string]string{
	driven.PromptToolSelection: `You are a helpful research assistant. Based on the question, decide whether to:
1. Use the provided document context to answer (use answer_from_document)
2. Search the web for recent or additional information (use google_search)
Choose the appropriate function based on the nature of the question.`,

	driven.PromptAnswerSystem: `You are a helpful research assistant. Provide a clear and accurate answer based on the available information. When using external sources, clearly indicate this with proper citations.`,

	driven.PromptDocumentAnswer: `Question: %s

Document Context: %s

Please answer the question based on the document context above.`,

	driven.PromptWebAnswer: `Question: %s

Document Context: %s

Additional Information from Web Search:
%s

Please provide a comprehensive answer using both the document context and the external information.
Clearly cite your sources when using external information.`,

	driven.PromptQueryGenerationSystem: `You are a research assistant that generates diverse search queries to explore the key aspects of a research paper.`,

	driven.PromptQueryGeneration: `Generate %d diverse search queries that together cover the key aspects of a research paper: its main contribution, methodology, experimental results, limitations, and related work.
Return exactly %d queries, one per line, with no numbering and no extra text.`,

	driven.PromptDeepSummarySystem: `You are a research assistant that writes structured, faithful summaries of academic papers. Do not invent facts that are not present in the provided content.`,

	driven.PromptDeepSummary: `Write a structured summary of the research paper based on the following content.
Cover: the problem addressed, the proposed approach, key results, and limitations.

Content:
%s

Summary:`,
}

// NewPromptStore creates a new file-based prompt store.
// If promptDir is empty, defaults to ~/.inquiro/prompts/.
//
// The constructor does not perform any I/O - directory creation and
// file writes happen lazily on first Load() call.
func NewPromptStore(promptDir string) (*PromptStore, error) {
	if promptDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home directory: %w", err)
		}
		promptDir = filepath.Join(home, ".inquiro", "prompts")
	}

	return &PromptStore{
		promptDir: promptDir,
		cache:     make(map[string]string),
	}, nil
}

// Load returns the prompt template for the given name.
// On first call, initialises the prompt directory and creates default
// files. Falls back to the embedded default if the file doesn't exist.
func (s *PromptStore) Load(name string) (string, error) {
	s.initOnce.Do(s.initialise)
	if s.initErr != nil {
		if prompt, ok := defaultPrompts[name]; ok {
			return prompt, nil
		}
		return "", fmt.Errorf("prompt store init failed: %w", s.initErr)
	}

	s.mu.RLock()
	if prompt, ok := s.cache[name]; ok {
		s.mu.RUnlock()
		return prompt, nil
	}
	s.mu.RUnlock()

	// Load from file (no lock held during I/O)
	prompt, err := s.loadFromFile(name)
	if err != nil {
		if defaultPrompt, ok := defaultPrompts[name]; ok {
			return defaultPrompt, nil
		}
		return "", fmt.Errorf("load prompt %q: %w", name, err)
	}

	// Double-check pattern to avoid overwriting concurrent loads
	s.mu.Lock()
	if _, ok := s.cache[name]; !ok {
		s.cache[name] = prompt
	} else {
		prompt = s.cache[name]
	}
	s.mu.Unlock()

	return prompt, nil
}

// Reload clears the prompt cache, forcing fresh loads from disk.
func (s *PromptStore) Reload() {
	s.mu.Lock()
	s.cache = make(map[string]string)
	s.mu.Unlock()
}

// Dir returns the prompt directory path.
func (s *PromptStore) Dir() string {
	return s.promptDir
}

// initialise creates the prompt directory and default files.
// Called once via sync.Once on first Load().
func (s *PromptStore) initialise() {
	if err := os.MkdirAll(s.promptDir, 0700); err != nil {
		s.initErr = fmt.Errorf("create prompt directory: %w", err)
		return
	}

	for name, content := range defaultPrompts {
		path := filepath.Join(s.promptDir, name+".txt")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			if err := os.WriteFile(path, []byte(content), 0600); err != nil {
				s.initErr = fmt.Errorf("create default prompt %q: %w", name, err)
				return
			}
		}
	}

	if err := s.createReadme(); err != nil {
		s.initErr = err
	}
}

// loadFromFile reads a prompt from disk.
func (s *PromptStore) loadFromFile(name string) (string, error) {
	path := filepath.Join(s.promptDir, name+".txt")
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// createReadme writes a README file explaining the prompts directory.
func (s *PromptStore) createReadme() error {
	path := filepath.Join(s.promptDir, "README.md")
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return nil // Already exists or stat error (ignore)
	}

	content := `# Inquiro Prompts

This directory contains customisable prompts used by the answering and
summarization pipelines.

## Files

- ` + "`tool_selection.txt`" + ` - Decides between document context and web search
- ` + "`answer_system.txt`" + ` - System prompt for answer generation
- ` + "`document_answer.txt`" + ` - Answer template using document context only
- ` + "`web_answer.txt`" + ` - Answer template merging document and web context
- ` + "`query_generation.txt`" + ` / ` + "`query_generation_system.txt`" + ` - Retrieval queries for summarization
- ` + "`deep_summary.txt`" + ` / ` + "`deep_summary_system.txt`" + ` - Structured summary generation

## Customisation

Edit any file to customise pipeline behaviour. Changes take effect on
the next command or after restarting the server.

## Format Placeholders

Some prompts use Go fmt placeholders:
- ` + "`%s`" + ` - String (e.g., the question or context)
- ` + "`%d`" + ` - Integer (e.g., the number of queries)

Ensure customised prompts maintain placeholders in the correct positions.
`
	return os.WriteFile(path, []byte(content), 0600)
}
