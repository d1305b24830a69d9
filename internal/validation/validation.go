// Package validation provides schema-driven request validation middleware.
//
// A Schema parses one part of an incoming request (body, query, or path
// parameters) and reports either a typed value or a list of field issues.
// The Validate middleware is a pure gate: on success the typed value is
// stored on the context for the handler, on failure the request is
// answered with 400/VALIDATION_ERROR and the handler never runs.
// Validators for different targets compose independently on a route.
package validation

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	govalidator "github.com/go-playground/validator/v10"

	apperrors "privfin/internal/errors"
	"privfin/internal/uuid"
)

// Target names the part of the request a schema applies to.
type Target string

const (
	TargetBody  Target = "body"
	TargetQuery Target = "query"
	TargetParam Target = "param"
)

// Result is the outcome of parsing a request part against a schema.
// Exactly one of Value (OK) or Issues (not OK) is meaningful, so any
// schema engine can be plugged in behind the Schema interface.
type Result struct {
	OK     bool
	Value  interface{}
	Issues []apperrors.Issue
}

// Schema parses one part of a request into a normalized, typed value.
type Schema interface {
	Parse(c *gin.Context) Result
}

// JSON is a Schema that binds the request body into T using the
// binding engine's struct tags.
type JSON[T any] struct{}

func (JSON[T]) Parse(c *gin.Context) Result {
	var v T
	if err := c.ShouldBindJSON(&v); err != nil {
		return Result{Issues: issuesFrom(err, string(TargetBody))}
	}
	return Result{OK: true, Value: v}
}

// Query is a Schema that binds the query string into T.
type Query[T any] struct{}

func (Query[T]) Parse(c *gin.Context) Result {
	var v T
	if err := c.ShouldBindQuery(&v); err != nil {
		return Result{Issues: issuesFrom(err, string(TargetQuery))}
	}
	return Result{OK: true, Value: v}
}

// UUIDParam is a Schema that requires the named path parameter to be a
// well-formed UUID.
type UUIDParam struct {
	Name string
}

func (p UUIDParam) Parse(c *gin.Context) Result {
	raw := c.Param(p.Name)
	if !uuid.IsValid(raw) {
		return Result{Issues: []apperrors.Issue{{Path: p.Name, Message: "must be a valid UUID"}}}
	}
	return Result{OK: true, Value: raw}
}

// Validate returns a middleware that runs the schema against the request
// and aborts with a validation error response on failure.
func Validate(target Target, schema Schema) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := schema.Parse(c)
		if !result.OK {
			appErr := apperrors.Validation(result.Issues)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   appErr,
			})
			return
		}
		c.Set(contextKey(target), result.Value)
		c.Next()
	}
}

// Body returns the validated request body previously stored by Validate.
func Body[T any](c *gin.Context) T {
	v, _ := c.Get(contextKey(TargetBody))
	return v.(T)
}

// QueryValue returns the validated query parameters previously stored by Validate.
func QueryValue[T any](c *gin.Context) T {
	v, _ := c.Get(contextKey(TargetQuery))
	return v.(T)
}

// ParamValue returns the validated path parameter previously stored by Validate.
func ParamValue(c *gin.Context) string {
	v, _ := c.Get(contextKey(TargetParam))
	return v.(string)
}

func contextKey(target Target) string {
	return "validated:" + string(target)
}

// issuesFrom converts a binding failure into field issues. Structured
// failures from the schema engine map one issue per field; anything else
// (malformed JSON, unparseable query values) becomes a single issue for
// the whole target.
func issuesFrom(err error, fallbackPath string) []apperrors.Issue {
	var verrs govalidator.ValidationErrors
	if errors.As(err, &verrs) {
		issues := make([]apperrors.Issue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, apperrors.Issue{Path: fe.Field(), Message: messageFor(fe)})
		}
		return issues
	}
	return []apperrors.Issue{{Path: fallbackPath, Message: err.Error()}}
}

func messageFor(fe govalidator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "uuid":
		return "must be a valid UUID"
	case "budget_period":
		return "must be one of weekly, monthly or yearly"
	case "decimal":
		return "must be a non-negative decimal number"
	default:
		return "failed on the '" + fe.Tag() + "' rule"
	}
}
