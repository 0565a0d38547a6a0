package cli

import (
	"time"

	"github.com/julianstephens/habitkit/internal/server"
)

type ServeCmd struct {
	Port  int    `short:"p" help:"Port to listen on."`
	DB    string `help:"Path to the json database file." type:"path"`
	Delay int    `help:"Artificial latency per request in milliseconds." default:"-1"`
}

func (c *ServeCmd) Run(ctx *Context) error {
	cfg := server.Config{
		Port:   c.Port,
		DBPath: c.DB,
		Delay:  time.Duration(c.Delay) * time.Millisecond,
	}

	srv, err := server.New(server.LoadConfig(cfg))
	if err != nil {
		return err
	}
	return srv.Run()
}
