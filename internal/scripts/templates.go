package scripts

import "embed"

//go:embed templates/*.sh.hbs
var templates embed.FS
