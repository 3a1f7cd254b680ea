// Command kcubectl talks to a Thorlabs K-Cube piezo controller over USB.
//
// Usage:
//
//	kcubectl -serial 29252712 info
//	kcubectl -serial 29252712 status
//	kcubectl -serial 29252712 identify
//	kcubectl -serial 29252712 enable
//	kcubectl -serial 29252712 volts 0.5
//	kcubectl -serial 29252712 demo
//
// The device serial number can be found with dmesg after plugging the
// unit in. Defaults can be kept in a YAML config file (-config).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/mveary/go-kcube/apt"
	"github.com/mveary/go-kcube/controller"
	"github.com/mveary/go-kcube/serialport"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	serialNum := flag.String("serial", "", "USB device serial number")
	baud := flag.Int("baud", 0, "override baud rate")
	verbose := flag.Bool("v", false, "log protocol activity")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(2)
	}

	log.SetFlags(log.Ltime)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("[kcubectl] %v", err)
	}
	if *serialNum != "" {
		cfg.Device.Serial = *serialNum
	}
	if *baud != 0 {
		cfg.Device.BaudRate = *baud
	}
	if cfg.Device.Serial == "" {
		log.Fatal("[kcubectl] no device serial number (use -serial or the config file)")
	}

	opts := []controller.Option{
		controller.WithVendorID(cfg.Device.VendorID),
		controller.WithProductID(cfg.Device.ProductID),
		controller.WithSerial(cfg.Device.Serial),
		controller.WithBaudRate(cfg.Device.BaudRate),
		controller.WithPreFlushDelay(cfg.Timing.preFlush()),
		controller.WithPostFlushDelay(cfg.Timing.postFlush()),
		controller.WithEnableDelay(cfg.Timing.enable()),
	}
	if *verbose {
		opts = append(opts, controller.WithLogger(stdLogger{}))
	}

	ctrl := controller.New(serialport.New(), opts...)
	defer ctrl.Close()

	if err := run(ctrl, flag.Arg(0), flag.Args()[1:]); err != nil {
		log.Fatalf("[kcubectl] %s failed: %v (code %d)", flag.Arg(0), err, apt.Code(err))
	}
}

func run(ctrl *controller.Controller, verb string, args []string) error {
	switch verb {
	case "info":
		info, err := ctrl.HardwareInfo()
		if err != nil {
			return err
		}
		fmt.Print(info)
		return nil

	case "status":
		status, err := ctrl.ActuatorStatus()
		if err != nil {
			return err
		}
		fmt.Print(status)
		return nil

	case "identify":
		fmt.Println("identifying device, look for a blinking display")
		return ctrl.Identify()

	case "enable":
		return ctrl.SetChannelEnabled(1, apt.ChannelEnabled)

	case "disable":
		return ctrl.SetChannelEnabled(1, apt.ChannelDisabled)

	case "volts":
		if len(args) == 0 {
			v, err := ctrl.OutputVoltage()
			if err != nil {
				return err
			}
			fmt.Printf("output volts: %.4f of full scale\n", v)
			return nil
		}
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("bad voltage %q: %w", args[0], err)
		}
		return ctrl.SetOutputVoltage(v)

	case "ui":
		params, err := ctrl.UIParameters()
		if err != nil {
			return err
		}
		fmt.Print(params)
		return nil

	case "io":
		settings, err := ctrl.IOSettings()
		if err != nil {
			return err
		}
		fmt.Print(settings)
		return nil

	case "demo":
		return demo(ctrl)
	}

	return fmt.Errorf("unknown command %q", verb)
}

// demo walks the full command catalog against a live unit: the original
// exercise sequence for a KPZ101 with a 150V piezo.
func demo(ctrl *controller.Controller) error {
	info, err := ctrl.HardwareInfo()
	if err != nil {
		return err
	}
	fmt.Print(info)
	fmt.Println()

	status, err := ctrl.ActuatorStatus()
	if err != nil {
		return err
	}
	fmt.Print(status)

	fmt.Println("\nidentifying device, look for a blinking display")
	if err := ctrl.Identify(); err != nil {
		return err
	}
	if err := ctrl.StopUpdateMessages(); err != nil {
		return err
	}

	params, err := ctrl.UIParameters()
	if err != nil {
		return err
	}
	fmt.Print(params)

	params.DisplayBrightness = 0
	if err := ctrl.SetUIParameters(*params); err != nil {
		return err
	}
	params, err = ctrl.UIParameters()
	if err != nil {
		return err
	}
	fmt.Print(params)

	settings, err := ctrl.IOSettings()
	if err != nil {
		return err
	}
	fmt.Print(settings)

	settings.VoltageLimit = apt.VoltageLimit150V
	if err := ctrl.SetIOSettings(*settings); err != nil {
		return err
	}
	settings, err = ctrl.IOSettings()
	if err != nil {
		return err
	}
	fmt.Print(settings)

	if err := ctrl.SetChannelEnabled(1, apt.ChannelEnabled); err != nil {
		return err
	}

	maxVolts := settings.VoltageLimit.Volts()
	v, err := ctrl.OutputVoltage()
	if err != nil {
		return err
	}
	fmt.Printf("output volts: %.2f\n", v*maxVolts)

	if err := ctrl.SetOutputVoltage(75.0 / maxVolts); err != nil {
		return err
	}
	v, err = ctrl.OutputVoltage()
	if err != nil {
		return err
	}
	fmt.Printf("output volts: %.2f\n", v*maxVolts)

	return nil
}

// stdLogger adapts the standard log package to the controller's Logger.
type stdLogger struct{}

func (stdLogger) Debug(msg string, kv ...interface{}) { log.Println("[debug]", msg, kv) }
func (stdLogger) Info(msg string, kv ...interface{})  { log.Println("[info]", msg, kv) }
func (stdLogger) Error(msg string, kv ...interface{}) { log.Println("[error]", msg, kv) }

func usage() {
	fmt.Fprintf(os.Stderr, `usage: kcubectl [flags] <command> [args]

Commands:
  info       print hardware information
  status     print actuator status
  identify   flash the front panel display
  enable     enable channel 1 output
  disable    disable channel 1 output
  volts [v]  read, or set, the output voltage (fraction of full scale)
  ui         print the wheel/display parameters
  io         print the output voltage limit and hub routing
  demo       walk the full command catalog

Flags:
`)
	flag.PrintDefaults()
}
