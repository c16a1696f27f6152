package account

import "github.com/AnatolNica/HeroNexus-sub001/pkg/contextx"

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals
