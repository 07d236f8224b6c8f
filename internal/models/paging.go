package models

// DefaultPageSize — размер страницы, если клиент его не указал.
const DefaultPageSize = 15

// QueryParameters — параметры постраничной выборки.
// StartIndex — сколько записей пропустить; PageNumber только возвращается клиенту обратно.
type QueryParameters struct {
	StartIndex int
	PageNumber int
	PageSize   int
}

// Normalize подставляет значения по умолчанию и отсекает отрицательные.
func (q QueryParameters) Normalize() QueryParameters {
	if q.StartIndex < 0 {
		q.StartIndex = 0
	}

	if q.PageNumber < 0 {
		q.PageNumber = 0
	}

	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}

	return q
}

// PagedResult — страница записей и общее количество.
type PagedResult[T any] struct {
	TotalCount   int
	PageNumber   int
	RecordNumber int
	Items        []T
}
