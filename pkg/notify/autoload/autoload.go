// Package autoload registers every built-in notifier factory through
// blank imports, mirroring the LLM provider autoload package.
package autoload

import (
	_ "neuronest/pkg/notify/telegram"
	_ "neuronest/pkg/notify/ultramsg"
)
