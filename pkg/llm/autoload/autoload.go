// Package autoload registers every built-in LLM provider factory through
// blank imports. Importing this package from main is all that is needed to
// make the providers available to llm.NewFromConfig.
package autoload

import (
	_ "neuronest/pkg/llm/gemini"
	_ "neuronest/pkg/llm/ollama"
	_ "neuronest/pkg/llm/openailm"
)
