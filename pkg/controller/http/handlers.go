package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/caselog-dev/caselog/pkg/domain/model"
	"github.com/caselog-dev/caselog/pkg/domain/types"
	"github.com/caselog-dev/caselog/pkg/utils/errutil"
	"github.com/caselog-dev/caselog/pkg/utils/safe"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type caseBody struct {
	Number         int    `json:"number,omitempty"`
	PatientID      string `json:"patient_id"`
	Age            int    `json:"age"`
	Date           string `json:"date"`
	Hospital       string `json:"hospital"`
	Consultant     string `json:"consultant"`
	Diagnosis      string `json:"diagnosis"`
	Procedure      string `json:"procedure"`
	Anaesthesia    string `json:"anaesthesia"`
	Outcome        string `json:"outcome"`
	Notes          string `json:"notes"`
	MyRole         string `json:"my_role"`
	PrimarySurgeon string `json:"primary_surgeon"`
	Assistant      string `json:"assistant"`
}

func toCaseBody(rec model.Record) caseBody {
	return caseBody{
		Number:         rec.Number,
		PatientID:      rec.PatientID,
		Age:            rec.Age,
		Date:           rec.Date,
		Hospital:       rec.Hospital,
		Consultant:     rec.Consultant,
		Diagnosis:      rec.Diagnosis,
		Procedure:      rec.Procedure,
		Anaesthesia:    rec.Anaesthesia.String(),
		Outcome:        rec.Outcome.String(),
		Notes:          rec.Notes,
		MyRole:         rec.MyRole.String(),
		PrimarySurgeon: rec.PrimarySurgeon,
		Assistant:      rec.Assistant,
	}
}

// filtersFromQuery reads the substring filter parameters. Parameter
// names are the lowercased column names of the filterable fields.
func filtersFromQuery(r *http.Request) map[types.Field]string {
	q := r.URL.Query()
	predicates := make(map[types.Field]string)
	for _, f := range types.FilterableFields() {
		if v := q.Get(paramName(f)); v != "" {
			predicates[f] = v
		}
	}
	return predicates
}

func paramName(f types.Field) string {
	switch f {
	case types.FieldProcedure:
		return "procedure"
	case types.FieldDiagnosis:
		return "diagnosis"
	case types.FieldHospital:
		return "hospital"
	case types.FieldConsultant:
		return "consultant"
	default:
		return ""
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safe.Write(r.Context(), w, data)
}

func (s *Server) handleListCases(w http.ResponseWriter, r *http.Request) {
	col := s.uc.Cases(filtersFromQuery(r))

	records := col.Records()
	resp := struct {
		Cases []caseBody `json:"cases"`
	}{
		Cases: make([]caseBody, len(records)),
	}
	for i, rec := range records {
		resp.Cases[i] = toCaseBody(rec)
	}
	writeJSON(w, r, resp)
}

func (s *Server) handleLogCase(w http.ResponseWriter, r *http.Request) {
	var body caseBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "invalid request body"), http.StatusBadRequest)
		return
	}

	fields := model.Fields{
		PatientID:      body.PatientID,
		Age:            body.Age,
		Date:           body.Date,
		Hospital:       body.Hospital,
		Consultant:     body.Consultant,
		Diagnosis:      body.Diagnosis,
		Procedure:      body.Procedure,
		Anaesthesia:    types.Anaesthesia(body.Anaesthesia),
		Outcome:        types.Outcome(body.Outcome),
		Notes:          body.Notes,
		MyRole:         types.Role(body.MyRole),
		PrimarySurgeon: body.PrimarySurgeon,
		Assistant:      body.Assistant,
	}

	rec, err := s.uc.LogCase(r.Context(), fields)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidRecord) {
			status = http.StatusBadRequest
		}
		errutil.HandleHTTP(r.Context(), w, err, status)
		return
	}

	data, err := json.Marshal(toCaseBody(rec))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, goerr.Wrap(err, "failed to marshal response"), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	safe.Write(r.Context(), w, data)
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, s.uc.Summary())
}

func (s *Server) handleGroupCounts(w http.ResponseWriter, r *http.Request) {
	field, err := types.ParseField(chi.URLParam(r, "field"))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	groups, err := s.uc.GroupCounts(field)
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	type group struct {
		Value string `json:"value"`
		Count int    `json:"count"`
	}
	resp := struct {
		Field  string  `json:"field"`
		Groups []group `json:"groups"`
	}{
		Field:  field.String(),
		Groups: make([]group, len(groups)),
	}
	for i, g := range groups {
		resp.Groups[i] = group{Value: g.Value, Count: g.Count}
	}
	writeJSON(w, r, resp)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	data, err := s.uc.Export(filtersFromQuery(r))
	if err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="surgical_log.xlsx"`)
	safe.Write(r.Context(), w, data)
}
