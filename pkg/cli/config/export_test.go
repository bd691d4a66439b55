package config

// NewAppConfigForTest creates an AppConfig for testing purposes
func NewAppConfigForTest(path string) *AppConfig {
	return &AppConfig{path: path}
}

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewOpenAIForTest creates an OpenAI config for testing purposes
func NewOpenAIForTest(apiKey string) *OpenAI {
	return &OpenAI{apiKey: apiKey}
}
