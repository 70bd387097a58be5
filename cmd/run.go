package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chippy-vm/chippy/internal/chip8"
	"github.com/chippy-vm/chippy/internal/pixel"
	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/spf13/cobra"
)

const sampleRate = beep.SampleRate(44100)

var (
	modeFlag string
	ipfFlag  uint32
	fpsFlag  int
)

// runCmd runs the chippy virtual machine against a ROM file until the
// window is closed.
var runCmd = &cobra.Command{
	Use:   "run `path/to/rom`",
	Short: "run the chippy emulator",
	Args:  cobra.ExactArgs(1),
	Run:   runChippy,
}

func init() {
	runCmd.Flags().StringVar(&modeFlag, "mode", "chip8", "dialect: chip8, superchip, xochip, experimental")
	runCmd.Flags().Uint32Var(&ipfFlag, "ipf", 0, "instructions per frame (0 = dialect default)")
	runCmd.Flags().IntVar(&fpsFlag, "fps", 60, "CPU/frame loop rate")
}

func runChippy(cmd *cobra.Command, args []string) {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Printf("\nerror reading rom %q: %v\n", args[0], err)
		os.Exit(1)
	}

	m := chip8.New(chip8.ParseMode(modeFlag))
	if err := m.LoadROM(rom); err != nil {
		fmt.Printf("\nerror loading rom: %v\n", err)
		os.Exit(1)
	}
	if ipfFlag > 0 {
		m.SetIPF(ipfFlag)
	}
	m.SetFPS(fpsFlag)

	win, err := pixel.NewWindow()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		fmt.Printf("\nerror initializing audio: %v\n", err)
		os.Exit(1)
	}
	speaker.Play(pixel.NewMachineStreamer(m, sampleRate))

	m.Start()
	defer m.Stop()

	ticker := time.NewTicker(time.Second / time.Duration(fpsFlag))
	defer ticker.Stop()

	for range ticker.C {
		if win.Closed() {
			fmt.Println("exit signal detected, gracefully shutting down...")
			return
		}
		win.PollInput(m)
		win.DrawFrame(m.SnapshotDisplay())
	}
}
