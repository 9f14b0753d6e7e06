package helpers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// OptionalInt64Query returns a pointer to the parsed int64 query parameter, or
// nil when the parameter is absent.
func OptionalInt64Query(c *gin.Context, name string) (*int64, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid number", name)
	}
	return &v, nil
}

// OptionalIntQuery returns a pointer to the parsed int query parameter, or nil
// when the parameter is absent.
func OptionalIntQuery(c *gin.Context, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be a valid number", name)
	}
	return &v, nil
}

// OptionalBoolQuery returns a pointer to the parsed bool query parameter, or
// nil when the parameter is absent.
func OptionalBoolQuery(c *gin.Context, name string) (*bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return &v, nil
}

// OptionalStringQuery returns a pointer to the query parameter value, or nil
// when the parameter is absent.
func OptionalStringQuery(c *gin.Context, name string) *string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	return &raw
}
