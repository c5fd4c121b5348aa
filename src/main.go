package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"elevfleet/src/config"
	"elevfleet/src/dispatcher"
	"elevfleet/src/fleet"
	"elevfleet/src/network"
	"elevfleet/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML config file")
	envPath := flag.String("env", ".env", "Path to .env file")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	flag.Parse()

	if err := run(*configPath, *envPath, *logLevel, *logFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, envPath, logLevel, logFile string) error {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}

	level, err := utils.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	closeLog, err := utils.InitLogger(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	elevators := fleet.New(cfg)
	defer elevators.Close()
	disp := dispatcher.New(elevators, cfg)

	bcastConn, err := network.DialBroadcastUDP(0)
	if err != nil {
		return err
	}
	defer bcastConn.Close()
	tx := network.NewTransmitter(bcastConn, network.BroadcastAddr(cfg.BcastPort))
	elevators.Subscribe(tx.Publish)
	go tx.Run(ctx)

	cmdConn, err := net.ListenPacket("udp4", fmt.Sprintf(":%d", cfg.CmdPort))
	if err != nil {
		return fmt.Errorf("listen on command port %d: %w", cfg.CmdPort, err)
	}
	slog.Info("Elevator fleet running",
		"cmdPort", cfg.CmdPort,
		"bcastPort", cfg.BcastPort,
		"elevators", cfg.NumElevators,
		"floors", fmt.Sprintf("%d..%d", cfg.MinFloor, cfg.MaxFloor))

	err = network.Receiver(ctx, cmdConn, network.NewHandler(disp, cfg))
	slog.Info("Shutting down", "reason", err)
	return nil
}
