package services

import "github.com/obruchev/user_intake_service/internal/core/domain"

// DefaultPageSize matches the listing table of the intake form.
const DefaultPageSize = 5

// Page is one slice of a fetched listing, independent of any display
// mechanism.
type Page struct {
	Items        []domain.Record `json:"items"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
	TotalPages   int             `json:"total_pages"`
	TotalRecords int             `json:"total_records"`
}

// Paginate slices records into pages of size rows. Pages are 1-based; a
// page beyond the end (or an empty listing) yields an empty Items slice
// with the metadata intact.
func Paginate(records []domain.Record, page, size int) Page {
	if size < 1 {
		size = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}

	totalPages := (len(records) + size - 1) / size

	result := Page{
		Items:        []domain.Record{},
		Page:         page,
		PageSize:     size,
		TotalPages:   totalPages,
		TotalRecords: len(records),
	}

	start := (page - 1) * size
	if start >= len(records) {
		return result
	}

	end := start + size
	if end > len(records) {
		end = len(records)
	}

	result.Items = records[start:end]
	return result
}
