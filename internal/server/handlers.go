package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/spigell/resume-relevance/internal/extract"
	"github.com/spigell/resume-relevance/internal/jobdesc"
	"github.com/spigell/resume-relevance/internal/resume"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const uploadField = "file"

var (
	errBadRequest      = errors.New("bad request")
	errTooLarge        = errors.New("upload too large")
	errNotConfigured   = errors.New("job description extraction is not configured")
	errMissingAnalysis = fmt.Errorf("%w: resume_data and jd_data are required", errBadRequest)
)

type analyzeRequest struct {
	ResumeData *resume.Record   `json:"resume_data"`
	JDData     *json.RawMessage `json:"jd_data"`
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"message": "Resume Relevance Check System API",
		"status":  "active",
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "Resume Relevance Check System",
	})
}

func (s *Server) handleUploadResume(w http.ResponseWriter, r *http.Request) {
	name, text, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	rec := s.segmenter.Segment(text)
	s.logger.Debug("resume segmented",
		zap.String("filename", name),
		zap.Int("education", len(rec.Education)),
		zap.Int("skills", len(rec.Skills)),
		zap.Float64("experience_years", rec.ExperienceYears),
	)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":     "Resume processed successfully",
		"resume_data": rec,
		"filename":    name,
	})
}

func (s *Server) handleUploadJD(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		s.errorResponse(w, r, errNotConfigured)
		return
	}

	name, text, err := s.readUpload(w, r)
	if err != nil {
		s.errorResponse(w, r, err)
		return
	}

	docs := s.extractor.ExtractJD(r.Context(), text)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message":  "JD processed successfully",
		"jd_data":  docs,
		"filename": name,
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, r, fmt.Errorf("%w: decoding body: %v", errBadRequest, err))
		return
	}

	if req.ResumeData == nil || req.JDData == nil {
		s.errorResponse(w, r, errMissingAnalysis)
		return
	}

	var raw any
	if err := json.Unmarshal(*req.JDData, &raw); err != nil {
		s.errorResponse(w, r, fmt.Errorf("%w: jd_data: %v", errBadRequest, err))
		return
	}

	docs, err := jobdesc.DecodeAll(raw)
	if err != nil {
		s.errorResponse(w, r, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}
	if docs == nil {
		s.errorResponse(w, r, errMissingAnalysis)
		return
	}

	outcomes := s.engine.ScoreBatch(r.Context(), *req.ResumeData, docs)
	s.metrics.observeOutcomes(outcomes)

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"message": "Analysis completed successfully",
		"results": outcomes,
	})
}

// readUpload reads the multipart file field fully into memory and extracts
// its text.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (string, string, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return "", "", fmt.Errorf("%w: limit is %d bytes", errTooLarge, tooLarge.Limit)
		}
		return "", "", fmt.Errorf("%w: reading multipart form: %v", errBadRequest, err)
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return "", "", fmt.Errorf("%w: form field %q: %v", errBadRequest, uploadField, err)
	}
	defer file.Close()

	name := header.Filename
	if !extract.Supported(name, false) {
		return name, "", fmt.Errorf("%w: %q, use .pdf or .docx", extract.ErrUnsupportedFormat, name)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return name, "", fmt.Errorf("%w: reading upload: %v", errBadRequest, err)
	}

	text, err := extract.ExtractBytes(name, data)
	if err != nil {
		if errors.Is(err, extract.ErrExtractionFailure) {
			s.metrics.observeExtractionFailure(extract.Format(name))
		}
		return name, "", err
	}

	return name, text, nil
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat),
		errors.Is(err, jobdesc.ErrMalformed),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, errTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, extract.ErrExtractionFailure):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("encoding json response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	log := s.logger.Warn
	if status >= http.StatusInternalServerError {
		log = s.logger.Error
	}
	log("request failed",
		zap.String("path", r.URL.Path),
		zap.Int("status", status),
		zap.String("request_id", middleware.GetReqID(r.Context())),
		zap.Error(err),
	)

	s.jsonResponse(w, status, map[string]string{"error": err.Error()})
}
