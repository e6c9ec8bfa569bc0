package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/johnadams78/capstoneproject/internal/inquiry"
	"github.com/spf13/cobra"
)

func newInquiriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inquiries",
		Short: "Customer inquiry commands",
	}

	cmd.AddCommand(newInquiriesListCmd())
	cmd.AddCommand(newInquiriesMarkCmd())
	return cmd
}

func newInquiriesListCmd() *cobra.Command {
	var (
		configPath string
		status     string
		vehicle    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customer inquiries",
		Long:  "Lists inquiries newest first, optionally filtered by status or vehicle.",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			inquiries, err := inquiry.List(gormDB, inquiry.ListFilters{
				Status:     status,
				VehicleRef: vehicle,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(inquiries) == 0 {
				fmt.Fprintln(out, "No inquiries found")
				return nil
			}

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTATUS\tNAME\tEMAIL\tVEHICLE\tRECEIVED")
			for _, inq := range inquiries {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					inq.ID, inq.Status, inq.CustomerName, inq.Email,
					inq.VehicleRef, inq.CreatedAt.Format("2006-01-02 15:04"))
			}
			w.Flush()
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "showroom.yaml", "path to showroom config file")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (new, contacted, closed)")
	cmd.Flags().StringVar(&vehicle, "vehicle", "", "filter by vehicle of interest")
	return cmd
}

func newInquiriesMarkCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "mark <id> <status>",
		Short: "Update an inquiry's follow-up status",
		Long:  "Moves an inquiry between new, contacted, and closed.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid inquiry id %q", args[0])
			}

			_, gormDB, err := connectFromConfig(configPath)
			if err != nil {
				return err
			}

			inq, err := inquiry.Mark(gormDB, uint(id), args[1])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Inquiry %d from %s is now %s\n",
				inq.ID, inq.CustomerName, inq.Status)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "showroom.yaml", "path to showroom config file")
	return cmd
}
