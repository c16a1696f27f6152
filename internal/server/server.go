package server

// Server groups the entity-specific HTTP servers under one router.
type Server struct {
	RouletteServer
	CharacterServer
	AccountServer

	jwtSecret []byte
}

func NewServer(
	rouletteServer RouletteServer,
	characterServer CharacterServer,
	accountServer AccountServer,
	jwtSecret []byte,
) Server {
	return Server{
		RouletteServer:  rouletteServer,
		CharacterServer: characterServer,
		AccountServer:   accountServer,
		jwtSecret:       jwtSecret,
	}
}
