package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/role-recommender/internal/ingestion"
	"github.com/jonathan/role-recommender/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// handleAnalyze runs one analysis on a pasted experience description.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Description is required")
		return
	}

	s.respondWithAnalysis(w, r, req.Description, "")
}

// handleAnalyzeResume extracts text from an uploaded resume document and runs
// one analysis on it. The extracted text is echoed back for review.
func (s *Server) handleAnalyzeResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing 'resume' file field")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to read upload")
		return
	}

	text, err := ingestion.ExtractText(header.Header.Get("Content-Type"), data)
	if err != nil {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not extract text: "+err.Error())
		return
	}

	s.respondWithAnalysis(w, r, text, text)
}

// respondWithAnalysis runs the engine and writes the response. The engine
// always produces a result, so this never fails the request.
func (s *Server) respondWithAnalysis(w http.ResponseWriter, r *http.Request, description, echo string) {
	requestID := uuid.New().String()

	result, notice := s.engine.Analyze(r.Context(), description)

	resp := types.AnalyzeResponse{
		RequestID:   requestID,
		Result:      result,
		Description: echo,
	}
	if notice != nil {
		resp.Notice = notice.Message
		log.Printf("[analyze] %s fell back to local pipeline: %s", requestID, notice.Kind)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
