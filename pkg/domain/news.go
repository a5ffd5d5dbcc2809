package domain

import "net/url"

// Default query values applied when the caller omits them
const (
	DefaultCountry  = "us"
	DefaultPageSize = "50"
)

// Endpoint identifies one of the upstream URL shapes
type Endpoint string

const (
	// EndpointEverything is a free-text search across all articles
	EndpointEverything Endpoint = "everything"
	// EndpointTopHeadlinesCategory is top headlines scoped to a country and category
	EndpointTopHeadlinesCategory Endpoint = "top-headlines-category"
	// EndpointTopHeadlines is top headlines scoped to a country only
	EndpointTopHeadlines Endpoint = "top-headlines"
)

// Query holds the inbound parameters of a news request
type Query struct {
	Category string
	Query    string
	Country  string
	PageSize string
}

// QueryFromValues extracts a Query from URL values. Empty values count as
// absent, so country and pageSize fall back to their defaults.
func QueryFromValues(v url.Values) Query {
	q := Query{
		Category: v.Get("category"),
		Query:    v.Get("query"),
		Country:  v.Get("country"),
		PageSize: v.Get("pageSize"),
	}
	return q.WithDefaults()
}

// WithDefaults returns a copy of q with the default country and page size filled in
func (q Query) WithDefaults() Query {
	if q.Country == "" {
		q.Country = DefaultCountry
	}
	if q.PageSize == "" {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Endpoint returns the upstream shape the query resolves to.
// A search term wins over a category; with neither, plain top headlines are used.
func (q Query) Endpoint() Endpoint {
	switch {
	case q.Query != "":
		return EndpointEverything
	case q.Category != "":
		return EndpointTopHeadlinesCategory
	default:
		return EndpointTopHeadlines
	}
}
