// Package newsapi implements the upstream client for the NewsAPI service.
//
// The client maps a domain.Query onto one of three NewsAPI request shapes:
//
//	/v2/everything?q=...&language=en&sortBy=publishedAt&pageSize=...&apiKey=...
//	/v2/top-headlines?country=...&category=...&pageSize=...&apiKey=...
//	/v2/top-headlines?country=...&pageSize=...&apiKey=...
//
// Caller supplied values are percent-encoded. The API key is appended as
// configured and never appears in errors returned to callers.
//
// Every failure is returned as a *domain.UpstreamError whose Kind tells the
// caller which step failed:
//
//	body, err := client.Fetch(ctx, q)
//	if domain.KindOf(err) == domain.ErrorKindStatus {
//	    // upstream answered with a non-2xx status
//	}
package newsapi
