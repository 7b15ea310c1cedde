// Package resilience groups the fault tolerance patterns used around remote
// summarization engines.
//
// The subpackages provide:
//   - Circuit breakers for engine endpoints (Ollama, OpenAI, Claude)
//   - Retry logic with exponential backoff and jitter for transient faults
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.OllamaConfig())
//	err := retry.WithBackoff(ctx, retry.EngineConfig(3), func() error {
//	    _, err := cb.Execute(func() (interface{}, error) {
//	        return engine.Generate(ctx, req)
//	    })
//	    return err
//	})
package resilience
