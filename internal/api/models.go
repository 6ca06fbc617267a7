package api

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type CacheClearResponse struct {
	Deleted int64 `json:"deleted"`
}
