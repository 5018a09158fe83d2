package domain

// GreetingMessage is the fixed text returned by the greeting endpoint.
const GreetingMessage = "Hello from the backend!"

// Greeting is a static message for API consumers.
type Greeting struct {
	Message string
}
