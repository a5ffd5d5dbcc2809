// Package config provides configuration management for the news proxy.
//
// Configuration is loaded once at startup from environment variables using
// the env package. The NewsAPI key has no default: Load fails when
// NEWS_API_KEY is missing, so a misconfigured deployment never starts.
//
// Example usage:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Printf("HTTP server will listen on %s\n", cfg.GetHTTPAddr())
package config
