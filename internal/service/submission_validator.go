package service

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/vendorhub/vendor-approval-api/internal/models"
)

const submissionSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["business_name", "business_type", "contact_person", "contact_mobile", "contact_email"],
	"properties": {
		"business_name": {"type": "string", "pattern": "\\S", "maxLength": 255},
		"business_type": {
			"enum": ["spa", "salon", "home_service", "hotel_spa", "wellness_center", "wellness", "beautician"]
		},
		"contact_person": {"type": "string", "pattern": "\\S", "maxLength": 255},
		"contact_mobile": {"type": "string", "pattern": "^\\+?[0-9]{10,15}$"},
		"contact_email": {"type": "string", "format": "email"},
		"business_address": {
			"type": "object",
			"properties": {
				"line1": {"type": "string", "maxLength": 255},
				"line2": {"type": "string", "maxLength": 255},
				"city": {"type": "string", "maxLength": 100},
				"state": {"type": "string", "maxLength": 100},
				"pincode": {"type": "string", "pattern": "^([0-9]{6})?$"},
				"latitude": {"type": "number", "minimum": -90, "maximum": 90},
				"longitude": {"type": "number", "minimum": -180, "maximum": 180}
			}
		},
		"application_data": {
			"type": "object",
			"properties": {
				"application_number": {"type": "string", "maxLength": 64},
				"partner_type": {"enum": ["FRANCHISE", "ASSOCIATION", "AGGREGATOR", "INDEPENDENT"]},
				"gst_number": {"type": "string", "pattern": "^[0-9]{2}[A-Z0-9]{13}$"},
				"pan_number": {"type": "string", "pattern": "^[A-Z]{5}[0-9]{4}[A-Z]$"},
				"years_in_business": {"type": "integer", "minimum": 0},
				"number_of_staff": {"type": "integer", "minimum": 0},
				"description": {"type": "string", "maxLength": 2000},
				"website": {"type": "string", "maxLength": 255},
				"franchise_payment_reference": {"type": "string", "maxLength": 128}
			}
		}
	}
}`

// SubmissionValidator checks application submissions against a JSON schema
type SubmissionValidator struct {
	schema *gojsonschema.Schema
}

// NewSubmissionValidator compiles the submission schema
func NewSubmissionValidator() (*SubmissionValidator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(submissionSchema))
	if err != nil {
		return nil, fmt.Errorf("failed to compile submission schema: %w", err)
	}
	return &SubmissionValidator{schema: schema}, nil
}

// Validate returns a readable error listing every schema violation
func (v *SubmissionValidator) Validate(req *models.ApplicationSubmitRequest) error {
	if req == nil {
		return fmt.Errorf("application payload is required")
	}

	result, err := v.schema.Validate(gojsonschema.NewGoLoader(req))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("invalid application: %s", strings.Join(errs, "; "))
	}

	return nil
}
