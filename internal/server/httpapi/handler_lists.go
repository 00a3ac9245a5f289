package httpapi

import (
	"net/http"
	"strconv"
)

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil && id > 0
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (s *Server) handleGetLists(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", 10)

	result, err := s.lists.GetAll(r.Context(), userID(r.Context()), page, pageSize)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	dto := pagedResultDto{Items: make([]todoListDto, 0, len(result.Items)), TotalCount: result.TotalCount}
	for i := range result.Items {
		dto.Items = append(dto.Items, mapList(&result.Items[i]))
	}
	writeJSON(w, http.StatusOK, dto)
}

func (s *Server) handleCreateList(w http.ResponseWriter, r *http.Request) {
	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	created, err := s.lists.Create(r.Context(), userID(r.Context()), req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapList(created))
}

func (s *Server) handleUpdateList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	updated, err := s.lists.Update(r.Context(), id, userID(r.Context()), req.Name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, mapList(updated))
}

func (s *Server) handleDeleteList(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	if err := s.lists.Delete(r.Context(), id, userID(r.Context())); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleReorderLists(w http.ResponseWriter, r *http.Request) {
	var orderedIDs []int64
	if err := decodeJSON(r, &orderedIDs); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}

	if err := s.lists.Reorder(r.Context(), userID(r.Context()), orderedIDs); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
