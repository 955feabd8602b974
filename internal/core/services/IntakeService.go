package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/obruchev/user_intake_service/internal/core/domain"
	"github.com/obruchev/user_intake_service/internal/core/ports"
)

const (
	listingCacheKey = "records:listing"
	listingCacheTTL = 5 * time.Minute
)

type IntakeService struct {
	store    ports.RecordStore
	provider ports.ProfileProvider
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewIntakeService(
	store ports.RecordStore,
	provider ports.ProfileProvider,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *IntakeService {
	return &IntakeService{
		store:    store,
		provider: provider,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

var _ ports.IntakeService = (*IntakeService)(nil)

// Submit validates the record, persists it, and returns the created record
// together with a freshly fetched listing. On any validator failure no
// store call is made and every invalid field gets its own message.
func (s *IntakeService) Submit(ctx context.Context, record *domain.Record) (*domain.Record, []domain.Record, error) {
	if err := s.validateRecord(record); err != nil {
		s.logger.Info("Submission rejected by validation", map[string]interface{}{
			"error":  err.Error(),
			"method": "Submit",
		})
		return nil, nil, err
	}

	id, err := s.store.Insert(ctx, record)
	if err != nil {
		s.logger.Error("Failed to insert record", map[string]interface{}{
			"error":  err.Error(),
			"method": "Submit",
		})
		return nil, nil, err
	}

	// The cached listing predates the insert; drop it before refreshing.
	if err := s.cache.Delete(listingCacheKey); err != nil {
		s.logger.Warn("Failed to invalidate listing cache", map[string]interface{}{
			"error": err.Error(),
		})
	}

	listing, err := s.refreshListing(ctx)
	if err != nil {
		s.logger.Error("Failed to refresh listing after insert", map[string]interface{}{
			"error": err.Error(),
			"id":    id,
		})
		return nil, nil, err
	}

	s.logger.Info("Record stored", map[string]interface{}{
		"id":    id,
		"email": record.Email,
	})

	return record, listing, nil
}

// List returns every stored record, serving the cached listing when one is
// present and falling back to the store otherwise.
func (s *IntakeService) List(ctx context.Context) ([]domain.Record, error) {
	cachedData, err := s.cache.Get(listingCacheKey)
	if err == nil {
		var cached []domain.Record
		if err := json.Unmarshal(cachedData, &cached); err == nil {
			s.logger.Debug("Listing served from cache", nil)
			return cached, nil
		}
	}

	return s.refreshListing(ctx)
}

// Prefill fetches one draft record from the external provider. Nothing is
// persisted; the caller must still submit.
func (s *IntakeService) Prefill(ctx context.Context) (*domain.Record, error) {
	record, err := s.provider.Fetch(ctx)
	if err != nil {
		s.logger.Error("Provider pre-fill failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Form pre-filled from provider", map[string]interface{}{
		"email": record.Email,
	})
	return record, nil
}

func (s *IntakeService) refreshListing(ctx context.Context) ([]domain.Record, error) {
	listing, err := s.store.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	listingData, err := json.Marshal(listing)
	if err != nil {
		s.logger.Warn("Failed to marshal listing for cache", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := s.cache.Set(listingCacheKey, listingData, listingCacheTTL); err != nil {
			s.logger.Warn("Failed to cache listing", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return listing, nil
}

// validateRecord evaluates every field independently and returns one
// message per invalid field.
func (s *IntakeService) validateRecord(record *domain.Record) error {
	var fieldErrors domain.ValidationErrors

	if err := s.validate.Struct(record); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, domain.FieldError{
				Field:   fieldName(fe.StructField()),
				Message: fieldMessage(fe),
			})
		}
	}

	// The date-picking affordance constrains the range; the only check
	// repeated here is that a well-formed date is not in the future.
	if date, err := time.Parse("2006-01-02", record.BirthDate); err == nil {
		if date.After(time.Now()) {
			fieldErrors = append(fieldErrors, domain.FieldError{
				Field:   "birthDate",
				Message: "must not be in the future",
			})
		}
	}

	if len(fieldErrors) > 0 {
		return fieldErrors
	}
	return nil
}

func fieldName(structField string) string {
	switch structField {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "BirthDate":
		return "birthDate"
	case "Address":
		return "address"
	case "Password":
		return "password"
	default:
		return structField
	}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Name":
		if fe.Tag() == "alphaspace" {
			return "may contain only letters and spaces"
		}
		return "must be at least 3 characters"
	case "Email":
		return "must contain @"
	case "BirthDate":
		if fe.Tag() == "required" {
			return "is required"
		}
		return "must be a date in yyyy-MM-dd format"
	case "Address":
		return "is required"
	case "Password":
		return "must be at least 6 characters"
	default:
		return "is invalid"
	}
}
