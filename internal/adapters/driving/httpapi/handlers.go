package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/inquiro-labs/inquiro/internal/core/domain"
	"github.com/inquiro-labs/inquiro/internal/core/ports/driving"
	"github.com/inquiro-labs/inquiro/internal/logger"
)

// askRetrievalK is how many chunks are retrieved for an ask request.
const askRetrievalK = 5

// maxUploadSize caps uploaded file size at 50 MiB.
const maxUploadSize = 50 << 20

type uploadResponse struct {
	IndexID   string `json:"index_id"`
	Filename  string `json:"filename"`
	NumChunks int    `json:"num_chunks"`
}

type askRequest struct {
	Query         string `json:"query"`
	IndexID       string `json:"index_id"`
	ModelProvider string `json:"model_provider,omitempty"`
}

type askResponse struct {
	Answer  string `json:"answer"`
	IndexID string `json:"index_id"`
}

type summarizeRequest struct {
	IndexID       string `json:"index_id"`
	ModelProvider string `json:"model_provider,omitempty"`
}

type summarizeResponse struct {
	Summary string `json:"summary"`
	IndexID string `json:"index_id"`
}

type documentResponse struct {
	IndexID   string `json:"index_id"`
	Filename  string `json:"filename"`
	NumChunks int    `json:"num_chunks"`
	CreatedAt string `json:"created_at"`
}

type listDocumentsResponse struct {
	Documents []documentResponse `json:"documents"`
	Count     int                `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "missing file field"})
		return
	}
	defer file.Close()

	doc, err := s.ports.Documents.Ingest(r.Context(), header.Filename, file)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		IndexID:   doc.ID,
		Filename:  doc.Filename,
		NumChunks: doc.NumChunks,
	})
}

func (s *Server) handleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Query == "" || req.IndexID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "query and index_id are required"})
		return
	}

	answerer, cleanup, err := s.answerService(r, req.ModelProvider)
	if err != nil {
		writeError(w, err)
		return
	}
	defer cleanup()

	chunks, err := s.ports.Retriever.Search(r.Context(), req.IndexID, req.Query, askRetrievalK)
	if err != nil {
		writeError(w, err)
		return
	}

	answer, err := answerer.Answer(r.Context(), req.Query, chunks)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, askResponse{Answer: answer, IndexID: req.IndexID})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req summarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.IndexID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "index_id is required"})
		return
	}

	answerer, cleanup, err := s.answerService(r, req.ModelProvider)
	if err != nil {
		writeError(w, err)
		return
	}
	defer cleanup()

	summary, err := answerer.Summarize(r.Context(), req.IndexID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, summarizeResponse{Summary: summary, IndexID: req.IndexID})
}

func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.ports.Documents.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := listDocumentsResponse{
		Documents: make([]documentResponse, len(docs)),
		Count:     len(docs),
	}
	for i, d := range docs {
		resp.Documents[i] = documentResponse{
			IndexID:   d.ID,
			Filename:  d.Filename,
			NumChunks: d.NumChunks,
			CreatedAt: d.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	indexID := r.PathValue("id")
	if indexID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "document id is required"})
		return
	}

	if err := s.ports.Documents.Delete(r.Context(), indexID); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// answerService resolves the answering pipeline for a request. An empty
// provider uses the default pipeline; a named provider goes through the
// factory so each request gets a fresh, isolated adapter.
func (s *Server) answerService(r *http.Request, provider string) (driving.AnswerService, func(), error) {
	if provider == "" {
		return s.ports.Answer, func() {}, nil
	}
	if s.ports.AnswerFor == nil {
		return nil, nil, domain.ErrInvalidInput
	}
	return s.ports.AnswerFor(r.Context(), provider)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput), errors.Is(err, domain.ErrEmptyDocument):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
