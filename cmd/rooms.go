package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kbamnote/patil-admin/internal/rooms"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "Browse hotel rooms",
}

var roomsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List rooms, paged and filtered",
	RunE:  runRoomsList,
}

var roomsShowCmd = &cobra.Command{
	Use:   "show [room-id]",
	Short: "Show one room",
	Args:  cobra.ExactArgs(1),
	RunE:  runRoomsShow,
}

func init() {
	rootCmd.AddCommand(roomsCmd)
	roomsCmd.AddCommand(roomsListCmd, roomsShowCmd)

	roomsListCmd.Flags().Int("page", 1, "Page number")
	roomsListCmd.Flags().Int("limit", 12, "Items per page")
	roomsListCmd.Flags().String("type", "", "Filter by room type")
	roomsListCmd.Flags().Bool("available", false, "Only available rooms")
}

func roomsRepo() (*rooms.Repository, error) {
	gw, store, err := newGateway()
	if err != nil {
		return nil, err
	}
	if err := requireSession(store); err != nil {
		return nil, err
	}
	return rooms.NewRepository(gw), nil
}

func runRoomsList(cmd *cobra.Command, args []string) error {
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")
	roomType, _ := cmd.Flags().GetString("type")

	filter := rooms.ListFilter{Page: page, Limit: limit, RoomType: roomType}
	if cmd.Flags().Changed("available") {
		available, _ := cmd.Flags().GetBool("available")
		filter.Available = &available
	}

	repo, err := roomsRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	result, err := repo.List(ctx, filter)
	if err != nil {
		return err
	}

	if len(result.Items) == 0 {
		fmt.Println("No rooms match the given filters.")
		return nil
	}

	fmt.Printf("%-8s %-14s %10s %8s  %s\n", "ROOM", "TYPE", "PRICE", "CAP", "STATUS")
	for _, r := range result.Items {
		status := "available"
		if !r.IsAvailable {
			status = "occupied"
		}
		fmt.Printf("%-8s %-14s %10.2f %8d  %s\n", r.RoomNumber, r.RoomType, r.PricePerNight, r.Capacity, status)
	}
	return nil
}

func runRoomsShow(cmd *cobra.Command, args []string) error {
	repo, err := roomsRepo()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), appConfig.RequestTimeout)
	defer cancel()

	room, err := repo.Get(ctx, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Room %s (%s)\n", room.RoomNumber, room.RoomType)
	if room.Description != "" {
		fmt.Println(room.Description)
	}
	fmt.Printf("Price per night: %.2f, sleeps %d\n", room.PricePerNight, room.Capacity)
	if len(room.Amenities) > 0 {
		fmt.Printf("Amenities: %s\n", strings.Join(room.Amenities, ", "))
	}
	if room.IsAvailable {
		fmt.Println("Currently available")
	} else {
		fmt.Println("Currently occupied")
	}
	return nil
}
