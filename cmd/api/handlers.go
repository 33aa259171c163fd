package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"cx-workbench-go/internal/actionable"
	"cx-workbench-go/internal/aggregator"
	"cx-workbench-go/internal/export"
	"cx-workbench-go/internal/logger"
	"cx-workbench-go/internal/store"
	"cx-workbench-go/internal/types"
	"cx-workbench-go/internal/workbench"
)

func newMux(st *store.Store, manager *workbench.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.New().WithRequest(r).Info("health check")
		fmt.Fprint(w, "ok")
	})

	// dashboard widgets
	mux.HandleFunc("GET /api/dashboard/summary", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, aggregator.Summarize(st.Records()))
	})
	mux.HandleFunc("GET /api/dashboard/action", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, actionable.Generate(aggregator.Summarize(st.Records())))
	})

	// raw interactions and per-record context
	mux.HandleFunc("GET /api/interactions", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, st.Records())
	})
	mux.HandleFunc("GET /api/interactions/{id}", func(w http.ResponseWriter, r *http.Request) {
		rec, ok := st.Get(r.PathValue("id"))
		if !ok {
			http.Error(w, "unknown interaction", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, rec)
	})
	mux.HandleFunc("GET /api/interactions/{id}/chapters", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, orEmpty(st.ChaptersFor(r.PathValue("id"))))
	})
	mux.HandleFunc("GET /api/interactions/{id}/topics", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, orEmpty(st.TopicsFor(r.PathValue("id"))))
	})
	mux.HandleFunc("GET /api/interactions/{id}/metadata", func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		var fallback types.Sentiment
		if rec, ok := st.Get(id); ok {
			fallback = rec.Sentiment
		}
		writeJSON(w, http.StatusOK, st.MetadataFor(id, fallback))
	})

	// workbench sessions
	mux.HandleFunc("POST /api/sessions", func(w http.ResponseWriter, r *http.Request) {
		reqLog := logger.New().WithRequest(r).WithField("handler", "create_session")
		var body struct {
			EntryMode        workbench.EntryMode  `json:"entry_mode"`
			DashboardFilters []types.GlobalFilter `json:"dashboard_filters"`
			InitialFilter    *types.FilterSpec    `json:"initial_filter"`
			FocusOnData      bool                 `json:"focus_on_data"`
		}
		if err := readJSON(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s := manager.Create(workbench.SessionConfig{
			EntryMode:        body.EntryMode,
			DashboardFilters: body.DashboardFilters,
			InitialFilter:    body.InitialFilter,
			FocusOnData:      body.FocusOnData,
		})
		reqLog.WithField("session_id", s.ID).Info("session created")
		writeJSON(w, http.StatusCreated, s.View())
	})

	session := func(w http.ResponseWriter, r *http.Request) *workbench.Session {
		s, err := manager.Get(r.PathValue("id"))
		if err != nil {
			http.Error(w, "unknown session", http.StatusNotFound)
			return nil
		}
		return s
	}

	mux.HandleFunc("GET /api/sessions/{id}/view", func(w http.ResponseWriter, r *http.Request) {
		if s := session(w, r); s != nil {
			writeJSON(w, http.StatusOK, s.View())
		}
	})

	mux.HandleFunc("POST /api/sessions/{id}/filters/toggle", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var spec types.FilterSpec
		if err := readJSON(r, &spec); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.ToggleFilter(spec.Type, spec.Value)
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("DELETE /api/sessions/{id}/filters/global/{filterID}", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		s.RemoveGlobalFilter(r.PathValue("filterID"))
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("PUT /api/sessions/{id}/search", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var body struct {
			Query string `json:"query"`
		}
		if err := readJSON(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.SetQuery(body.Query)
		w.WriteHeader(http.StatusNoContent)
	})

	mux.HandleFunc("POST /api/sessions/{id}/select", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var body struct {
			ID string `json:"id"`
		}
		if err := readJSON(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.Select(body.ID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("POST /api/sessions/{id}/close", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		s.CloseFocus()
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("POST /api/sessions/{id}/notebook", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var body struct {
			ID string `json:"id"`
		}
		if err := readJSON(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if err := s.AddToNotebook(body.ID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("DELETE /api/sessions/{id}/notebook/{itemID}", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		s.RemoveFromNotebook(r.PathValue("itemID"))
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("PUT /api/sessions/{id}/layout", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var u workbench.LayoutUpdate
		if err := readJSON(r, &u); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.UpdateLayout(u)
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("POST /api/sessions/{id}/reset", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		var body struct {
			EntryMode workbench.EntryMode `json:"entry_mode"`
		}
		if err := readJSON(r, &body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		s.SwitchEntryMode(body.EntryMode)
		writeJSON(w, http.StatusOK, s.View())
	})

	mux.HandleFunc("GET /api/sessions/{id}/highlight", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		segments, err := s.Highlight(r.URL.Query().Get("id"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, segments)
	})

	mux.HandleFunc("GET /api/sessions/{id}/export", func(w http.ResponseWriter, r *http.Request) {
		s := session(w, r)
		if s == nil {
			return
		}
		reqLog := logger.New().WithRequest(r).WithField("handler", "export")
		set := r.URL.Query().Get("set")
		var records []types.Interaction
		switch set {
		case "", "results":
			records = s.Results()
			set = "results"
		case "notebook":
			records = s.Notebook()
		default:
			http.Error(w, "set must be results or notebook", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", set))
		if err := export.Write(w, "Interactions", records); err != nil {
			reqLog.WithError(err).Error("export failed")
		}
	})

	mux.HandleFunc("DELETE /api/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		manager.Delete(r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	return mux
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New().WithError(err).Error("failed to write response")
	}
}

func readJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// orEmpty keeps empty lookups rendering as [] instead of null.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
