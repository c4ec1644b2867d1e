// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/finance-miniapp/backend/internal/domain/entity"

// AddCategoryRequest represents the request body for category creation.
type AddCategoryRequest struct {
	Name string  `json:"name" binding:"required,min=1,max=64"`
	Kind *string `json:"kind,omitempty" binding:"omitempty,oneof=income expense"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Kind *string `json:"kind,omitempty"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	var kind *string
	if category.Kind != nil {
		k := string(*category.Kind)
		kind = &k
	}

	return CategoryResponse{
		ID:   category.ID.String(),
		Name: category.Name,
		Kind: kind,
	}
}

// ToCategoryListResponse converts Category entities to response DTOs.
func ToCategoryListResponse(categories []*entity.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = ToCategoryResponse(c)
	}
	return responses
}
