package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ashcdev/shipengine-go/pkg/shipengine"
)

var version = "0.0.1"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "shipengine",
	Short:        "ShipEngine API command line client",
	Version:      version,
	SilenceUsage: true,
}

var carriersCmd = &cobra.Command{
	Use:   "carriers",
	Short: "List connected carrier accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.ListCarriers(cmd.Context(), nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [addresses-json]",
	Short: "Validate shipping addresses (JSON array argument or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		var addresses []shipengine.Params
		if err := readJSONArg(args, &addresses); err != nil {
			return err
		}
		reply, err := app.Client.ValidateAddresses(cmd.Context(), addresses, nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var ratesCmd = &cobra.Command{
	Use:   "rates [request-json]",
	Short: "Quote shipping rates (JSON request argument or stdin)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		var params shipengine.Params
		if err := readJSONArg(args, &params); err != nil {
			return err
		}
		reply, err := app.Client.GetRates(cmd.Context(), params, nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var labelsCmd = &cobra.Command{
	Use:   "labels",
	Short: "Purchase and void shipping labels",
}

var labelsCreateCmd = &cobra.Command{
	Use:   "create [shipment-json]",
	Short: "Purchase a label, from a quoted rate (--rate) or inline shipment details",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		var params shipengine.Params
		if len(args) > 0 || flagRateID == "" {
			if err := readJSONArg(args, &params); err != nil {
				return err
			}
		}

		var reply shipengine.Params
		if flagRateID != "" {
			reply, err = app.Client.CreateLabelFromRate(cmd.Context(), flagRateID, params, nil)
		} else {
			reply, err = app.Client.CreateLabelFromShipment(cmd.Context(), params, nil)
		}
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var labelsVoidCmd = &cobra.Command{
	Use:   "void <label-id>",
	Short: "Void a purchased label",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.VoidLabel(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var trackCmd = &cobra.Command{
	Use:   "track [label-id...]",
	Short: "Track packages by label id, or by --carrier and --number",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		if flagCarrierCode != "" || flagTrackingNumber != "" {
			if flagCarrierCode == "" || flagTrackingNumber == "" {
				return fmt.Errorf("--carrier and --number must be used together")
			}
			reply, err := app.Client.Track(cmd.Context(), flagCarrierCode, flagTrackingNumber, nil)
			if err != nil {
				return err
			}
			return printJSON(reply)
		}

		if len(args) == 0 {
			return fmt.Errorf("either label ids or --carrier/--number are required")
		}

		// Fan out over label ids; one failed lookup fails the command.
		results := make([]shipengine.Params, len(args))
		g, ctx := errgroup.WithContext(cmd.Context())
		for i, labelID := range args {
			g.Go(func() error {
				reply, err := app.Client.TrackByLabelID(ctx, labelID, nil)
				if err != nil {
					return fmt.Errorf("%s: %w", labelID, err)
				}
				results[i] = reply
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}
		return printJSON(results)
	},
}

var shipmentsCmd = &cobra.Command{
	Use:   "shipments",
	Short: "Inspect and manage shipments",
}

var shipmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shipments",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		params := shipengine.Params{}
		if flagShipmentStatus != "" {
			params["shipment_status"] = flagShipmentStatus
		}
		res, err := app.Client.ListShipments(cmd.Context(), params, nil)
		if err != nil {
			return err
		}
		if res.Shipments != nil {
			return printJSON(res.Shipments)
		}
		return printJSON(res.Raw)
	},
}

var shipmentsGetCmd = &cobra.Command{
	Use:   "get <shipment-id>",
	Short: "Get a shipment by id (or by external id with --external)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		var res *shipengine.ShipmentResult
		if flagExternalID {
			res, err = app.Client.GetShipmentByExternalID(cmd.Context(), args[0], nil)
		} else {
			res, err = app.Client.GetShipmentByID(cmd.Context(), args[0], nil)
		}
		if err != nil {
			return err
		}
		if res.Shipment != nil {
			return printJSON(res.Shipment)
		}
		return printJSON(res.Raw)
	},
}

var shipmentsCancelCmd = &cobra.Command{
	Use:   "cancel <shipment-id>",
	Short: "Cancel a shipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.CancelShipment(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var shipmentsRatesCmd = &cobra.Command{
	Use:   "rates <shipment-id>",
	Short: "Quote rates for an existing shipment",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.GetShipmentRates(cmd.Context(), args[0], nil, nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var shipmentsTagCmd = &cobra.Command{
	Use:   "tag <shipment-id> <tag>",
	Short: "Add a tag to a shipment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.TagShipment(cmd.Context(), args[0], args[1], nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var shipmentsUntagCmd = &cobra.Command{
	Use:   "untag <shipment-id> <tag>",
	Short: "Remove a tag from a shipment",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close(cmd.Context())

		reply, err := app.Client.UntagShipment(cmd.Context(), args[0], args[1], nil)
		if err != nil {
			return err
		}
		return printJSON(reply)
	},
}

var (
	flagRateID         string
	flagCarrierCode    string
	flagTrackingNumber string
	flagShipmentStatus string
	flagExternalID     bool
)

func init() {
	labelsCreateCmd.Flags().StringVar(&flagRateID, "rate", "", "purchase the label from this quoted rate id")
	trackCmd.Flags().StringVar(&flagCarrierCode, "carrier", "", "carrier code for tracking-number lookup")
	trackCmd.Flags().StringVar(&flagTrackingNumber, "number", "", "tracking number for tracking-number lookup")
	shipmentsListCmd.Flags().StringVar(&flagShipmentStatus, "status", "", "filter by shipment status")
	shipmentsGetCmd.Flags().BoolVar(&flagExternalID, "external", false, "look up by external shipment id")

	labelsCmd.AddCommand(labelsCreateCmd, labelsVoidCmd)
	shipmentsCmd.AddCommand(shipmentsListCmd, shipmentsGetCmd, shipmentsCancelCmd,
		shipmentsRatesCmd, shipmentsTagCmd, shipmentsUntagCmd)
	rootCmd.AddCommand(carriersCmd, validateCmd, ratesCmd, labelsCmd, trackCmd, shipmentsCmd)
}
