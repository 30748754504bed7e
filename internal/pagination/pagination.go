// Package pagination provides list-size limits for query endpoints.
package pagination

import "gorm.io/gorm"

const (
	// DefaultLimit is applied when a list request omits limit.
	DefaultLimit = 100
	// MaxLimit caps any requested limit.
	MaxLimit = 500
)

// LimitRequest holds limit/offset parameters parsed from query strings.
type LimitRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

// Defaults fills in the default limit and clamps oversized requests.
func (p *LimitRequest) Defaults() {
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
}

// Paginate returns a GORM scope that applies OFFSET and LIMIT for the given request.
func Paginate(req LimitRequest) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		req.Defaults()
		return db.Offset(req.Offset).Limit(req.Limit)
	}
}
