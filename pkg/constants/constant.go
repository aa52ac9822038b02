package constants

import "time"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100

	// Default column list endpoints sort on when no sort is requested.
	DefaultSortColumn = "created_at"

	ChannelStatsTTL = 30 * time.Second

	MaxUploadSize = 512 * 1024 * 1024
)
