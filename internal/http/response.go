package http

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/walterflo/pizzeria-service/internal/domain/dto"
	"github.com/walterflo/pizzeria-service/internal/middleware"
)

// Response DTO pools for reducing allocations.
var (
	successResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.SuccessResponse{}
		},
	}

	errorResponsePool = sync.Pool{
		New: func() interface{} {
			return &dto.ErrorResponse{}
		},
	}
)

// ResponseBuilder wraps a gin context with the standard response envelopes.
// Uses sync.Pool for DTO reuse to reduce allocations.
type ResponseBuilder struct {
	c *gin.Context
}

// NewResponseBuilder creates a new response builder for the given context.
func NewResponseBuilder(c *gin.Context) *ResponseBuilder {
	return &ResponseBuilder{c: c}
}

// Success sends a response with the given status and data wrapped in the
// success envelope.
func (b *ResponseBuilder) Success(statusCode int, data interface{}) {
	resp, _ := successResponsePool.Get().(*dto.SuccessResponse)
	if resp == nil {
		resp = &dto.SuccessResponse{}
	}

	resp.Data = data
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	// Gin serializes synchronously, so returning to the pool here is safe.
	b.c.JSON(statusCode, resp)

	resp.Data = nil
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	successResponsePool.Put(resp)
}

// Error sends an error response with the standard envelope. The code is
// derived from the status unless err carries a more specific message.
func (b *ResponseBuilder) Error(statusCode int, err error) {
	resp, _ := errorResponsePool.Get().(*dto.ErrorResponse)
	if resp == nil {
		resp = &dto.ErrorResponse{}
	}

	resp.Error = dto.ErrCodeFromStatus(statusCode)
	if err != nil {
		resp.Message = err.Error()
	}
	resp.RequestID = middleware.GetRequestID(b.c)
	resp.Timestamp = time.Now()

	b.c.AbortWithStatusJSON(statusCode, resp)

	resp.Error = ""
	resp.Message = ""
	resp.RequestID = ""
	resp.Timestamp = time.Time{}
	errorResponsePool.Put(resp)
}
