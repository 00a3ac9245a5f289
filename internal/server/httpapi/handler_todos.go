package httpapi

import (
	"net/http"
	"strconv"
)

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	var req createTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	created, err := s.items.Create(r.Context(), userID(r.Context()), req.Value, req.ListID)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapTodo(created))
}

func (s *Server) handleUpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	var req updateTodoRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	updated, err := s.items.Update(r.Context(), id, userID(r.Context()), req.Value, req.IsCompleted, req.Order)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapTodo(updated))
}

func (s *Server) handleDeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	if err := s.items.Delete(r.Context(), id, userID(r.Context())); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderTodos(w http.ResponseWriter, r *http.Request) {
	listID, err := strconv.ParseInt(r.URL.Query().Get("listId"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid listId")
		return
	}

	var orderedIDs []int64
	if err := decodeJSON(r, &orderedIDs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := s.items.Reorder(r.Context(), userID(r.Context()), listID, orderedIDs); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
