package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"recall-game/domain"
	"recall-game/services"
	"recall-game/storage"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH" required:"true"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"WARN"`
	Colours        bool   `envconfig:"ROOMS_COLOURS" default:"true"`
}

func main() {
	code, err := run(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.Red.Sprintf("rooms: %v", err))
	}
	os.Exit(code)
}

func usage() error {
	return fmt.Errorf("usage: rooms [-all] list | rooms seed <file.json> | rooms [-prefix p] dump")
}

func run(args []string, out io.Writer) (int, error) {
	fs := flag.NewFlagSet("rooms", flag.ContinueOnError)
	all := fs.Bool("all", false, "List private rooms too")
	prefix := fs.String("prefix", "", "Key prefix to dump")
	if err := fs.Parse(args); err != nil {
		return exitConfig, err
	}
	if fs.NArg() == 0 {
		return exitConfig, usage()
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if !config.Colours {
		color.Disable()
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer db.Close()
	repo := storage.NewRoomRepository(db, logger)

	switch fs.Arg(0) {
	case "seed":
		if fs.NArg() != 2 {
			return exitConfig, usage()
		}
		rooms, err := storage.ReadSeedFile(fs.Arg(1))
		if err != nil {
			return exitConfig, err
		}
		n, err := storage.Seed(repo, rooms)
		if err != nil {
			return exitRuntime, err
		}
		fmt.Fprintln(out, color.Green.Sprintf("Seeded %d rooms from %s", n, fs.Arg(1)))
	case "list":
		var summaries []domain.RoomSummary
		if *all {
			rooms, err := repo.GetAllRooms()
			if err != nil {
				return exitRuntime, err
			}
			for _, r := range rooms {
				summaries = append(summaries, r.Summary())
			}
		} else {
			summaries, err = services.NewRoomService(logger, repo).ListPublicRooms()
			if err != nil {
				return exitRuntime, err
			}
		}
		renderRooms(out, summaries)
	case "dump":
		if err := dump(out, db, *prefix); err != nil {
			return exitRuntime, err
		}
	default:
		return exitConfig, usage()
	}
	return exitOK, nil
}

func renderRooms(out io.Writer, rooms []domain.RoomSummary) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Room ID", "Name", "Permission", "Players", "Game", "Turn", "Auto"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, r := range rooms {
		permission := r.Permission
		if permission == domain.PermissionPublic {
			permission = color.Green.Sprint(permission)
		} else {
			permission = color.Yellow.Sprint(permission)
		}
		table.Append([]string{
			r.RoomID,
			r.RoomName,
			permission,
			fmt.Sprintf("%d/%d (min %d)", r.CurrentSize, r.MaxSize, r.MinSize),
			r.GameType,
			strconv.Itoa(r.TurnTimeLimit) + "s",
			strconv.FormatBool(r.AutoStart),
		})
	}
	table.Render()
	fmt.Fprintln(out, color.Cyan.Sprintf("%d rooms", len(rooms)))
}
