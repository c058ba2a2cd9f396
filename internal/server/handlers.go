package server

import (
	"errors"
	"net/http"

	"github.com/bobmcallan/vire-compliance/internal/models"
	"github.com/bobmcallan/vire-compliance/internal/services/compliance"
)

const codeInvalidSnapshot = "invalid_snapshot"

// handleComplianceCatalog handles GET /api/compliance/catalog.
func (s *Server) handleComplianceCatalog(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.ComplianceService.Catalog())
}

// handleComplianceEvaluate handles POST /api/compliance/evaluate.
// The body is a PortfolioSnapshot in JSON or msgpack; the report format
// follows negotiateFormat.
func (s *Server) handleComplianceEvaluate(w http.ResponseWriter, r *http.Request) {
	var snapshot models.PortfolioSnapshot
	if err := DecodeBody(w, r, &snapshot, s.app.Config.API.MaxBodyBytes); err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), codeInvalidSnapshot)
		return
	}

	report, err := s.app.ComplianceService.Evaluate(r.Context(), &snapshot)
	if err != nil {
		if errors.Is(err, compliance.ErrInvalidSnapshot) {
			WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), codeInvalidSnapshot)
			return
		}
		s.logger.Error().Err(err).Msg("Compliance evaluation failed")
		WriteError(w, http.StatusInternalServerError, "Compliance evaluation failed")
		return
	}

	switch negotiateFormat(r) {
	case formatMarkdown:
		WriteMarkdown(w, http.StatusOK, report.ToMarkdown())
	case formatMsgpack:
		if err := WriteMsgpack(w, http.StatusOK, report); err != nil {
			s.logger.Error().Err(err).Msg("Failed to write msgpack report")
			WriteError(w, http.StatusInternalServerError, "Failed to encode report")
		}
	default:
		WriteJSON(w, http.StatusOK, report)
	}
}
