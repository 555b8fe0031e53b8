package api

import (
	"net/http"

	"github.com/feedline/yml-feed-parser/internal/normalizer"
	"github.com/feedline/yml-feed-parser/internal/platform/models"
	"github.com/feedline/yml-feed-parser/internal/platform/storage"
	"github.com/feedline/yml-feed-parser/internal/treeview"
)

type parameterListResponse struct {
	Parameters []models.TemplateParameter `json:"parameters"`
	Counts     models.CategoryCounts      `json:"counts"`
}

func (s *Server) listParametersHandler(w http.ResponseWriter, r *http.Request) {
	templateID, ok := pathID(r, "templateID")
	if !ok {
		s.jsonError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	parameters, err := s.store.ListTemplateParameters(r.Context(), templateID)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	_ = s.jsonResponse(w, http.StatusOK, parameterListResponse{
		Parameters: parameters,
		Counts:     normalizer.CountTemplateByCategory(parameters),
	})
}

type parameterTreeNode struct {
	Parameter models.TemplateParameter `json:"parameter"`
	Depth     int                      `json:"depth"`
	Ambiguous bool                     `json:"ambiguous,omitempty"`
	Children  []parameterTreeNode      `json:"children"`
}

func (s *Server) parameterTreeHandler(w http.ResponseWriter, r *http.Request) {
	templateID, ok := pathID(r, "templateID")
	if !ok {
		s.jsonError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	parameters, err := s.store.ListTemplateParameters(r.Context(), templateID)
	if err != nil {
		s.storeError(w, r, err)
		return
	}

	roots := treeview.BuildParameterTree(parameters)
	_ = s.jsonResponse(w, http.StatusOK, treeNodes(roots))
}

func treeNodes(nodes []*treeview.ParameterNode) []parameterTreeNode {
	result := make([]parameterTreeNode, 0, len(nodes))
	for _, node := range nodes {
		result = append(result, parameterTreeNode{
			Parameter: node.Parameter,
			Depth:     node.Depth,
			Ambiguous: node.Ambiguous,
			Children:  treeNodes(node.Children),
		})
	}
	return result
}

type updateParameterRequest struct {
	Value        *string `json:"value"`
	IsActive     *bool   `json:"isActive"`
	IsRequired   *bool   `json:"isRequired"`
	DisplayOrder *int32  `json:"displayOrder"`
}

func (s *Server) updateParameterHandler(w http.ResponseWriter, r *http.Request) {
	parameterID, ok := pathID(r, "parameterID")
	if !ok {
		s.jsonError(w, http.StatusBadRequest, "invalid parameter id")
		return
	}

	var req updateParameterRequest
	if err := readJSON(w, r, &req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := storage.TemplateParameterPatch{
		Value:        req.Value,
		IsActive:     req.IsActive,
		IsRequired:   req.IsRequired,
		DisplayOrder: req.DisplayOrder,
	}

	if err := s.store.UpdateTemplateParameter(r.Context(), parameterID, patch); err != nil {
		s.storeError(w, r, err)
		return
	}

	_ = s.jsonResponse(w, http.StatusOK, map[string]string{"status": "updated"})
}

type idsRequest struct {
	IDs []int32 `json:"ids" validate:"required,min=1,dive,gt=0"`
}

func (s *Server) reorderParametersHandler(w http.ResponseWriter, r *http.Request) {
	templateID, ok := pathID(r, "templateID")
	if !ok {
		s.jsonError(w, http.StatusBadRequest, "invalid template id")
		return
	}

	var req idsRequest
	if err := readJSON(w, r, &req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "ids must be a non-empty list of positive ids")
		return
	}

	if err := s.store.ReorderTemplateParameters(r.Context(), templateID, req.IDs); err != nil {
		s.storeError(w, r, err)
		return
	}

	_ = s.jsonResponse(w, http.StatusOK, map[string]string{"status": "reordered"})
}

func (s *Server) deleteParametersHandler(w http.ResponseWriter, r *http.Request) {
	var req idsRequest
	if err := readJSON(w, r, &req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.jsonError(w, http.StatusBadRequest, "ids must be a non-empty list of positive ids")
		return
	}

	if err := s.store.DeleteTemplateParameters(r.Context(), req.IDs); err != nil {
		s.storeError(w, r, err)
		return
	}

	_ = s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
