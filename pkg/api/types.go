package api

import (
	"github.com/ssargent/statsdump/pkg/archive"
	"github.com/ssargent/statsdump/pkg/statsdump"
)

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// StoreResponse is returned when a dump is uploaded to the archive
type StoreResponse struct {
	ID        string            `json:"id"`
	Duplicate bool              `json:"duplicate"`
	Record    *statsdump.Record `json:"record"`
}

// DumpResponse is an archived dump with its decoded record
type DumpResponse struct {
	Entry  *archive.Entry    `json:"entry"`
	Record *statsdump.Record `json:"record"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Bind           string
	Port           int
	APIKey         string
	MaxDumpSize    int64
	AllowedOrigins []string
	Strict         bool
}

// DumpArchive is the storage the collector archives dumps into
type DumpArchive interface {
	Put(raw []byte, rec *statsdump.Record) (*archive.Entry, bool, error)
	Get(id string) (*archive.Entry, error)
	Raw(id string) ([]byte, error)
	List() ([]archive.Entry, error)
	Delete(id string) error
	Close() error
}
