package dto

type UpdateRecordRequest struct {
	Column string      `json:"column" validate:"required"`
	Value  interface{} `json:"value"`
}

type ExecuteQueryRequest struct {
	Query     string `json:"query" validate:"required"`
	Confirmed bool   `json:"confirmed"`
}

type MigrateRequest struct {
	Script string `json:"script" validate:"required"`
}

type TableListResponse struct {
	Tables []string `json:"tables"`
}

type ExecuteQueryResponse struct {
	Rows         []map[string]interface{} `json:"rows,omitempty"`
	RowsAffected *int64                   `json:"rowsAffected,omitempty"`
	Message      string                   `json:"message,omitempty"`
}
