package report_equipment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfaustino/DEI-RoomService/internal/domain"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	"github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRoomRepo struct {
	room       *domain.Room
	brokenSet  map[int64]bool
	setBrokens []int64
}

func (f *fakeRoomRepo) GetByEquipmentID(_ context.Context, equipmentID int64) (*domain.Room, error) {
	for _, eq := range f.room.Equipment {
		if eq.ID == equipmentID {
			return f.room, nil
		}
	}
	return nil, roomRepo.ErrEquipmentNotFound
}

func (f *fakeRoomRepo) SetEquipmentBroken(_ context.Context, equipmentID int64, broken bool) error {
	if f.brokenSet == nil {
		f.brokenSet = map[int64]bool{}
	}
	f.brokenSet[equipmentID] = broken
	f.setBrokens = append(f.setBrokens, equipmentID)
	return nil
}

type fakeBookingRepo struct {
	affected          []*domain.Booking
	maintenanceFuture int64
	deletedFrom       *time.Time
}

func (f *fakeBookingRepo) FindEquipmentDependentByRoom(_ context.Context, _ int64, _ time.Time) ([]*domain.Booking, error) {
	return f.affected, nil
}

func (f *fakeBookingRepo) DeleteMaintenanceByRoom(_ context.Context, _ int64, from time.Time) (int64, error) {
	f.deletedFrom = &from
	return f.maintenanceFuture, nil
}

// fakeRelocator перемещает все брони, кроме перечисленных в stuck
type fakeRelocator struct {
	stuck    map[int64]bool
	requests []*relocate_booking.Request
}

func (f *fakeRelocator) Execute(_ context.Context, req *relocate_booking.Request) (*relocate_booking.Response, error) {
	f.requests = append(f.requests, req)
	if f.stuck[req.BookingID] {
		return nil, relocate_booking.ErrNoAlternativeRoom
	}
	return &relocate_booking.Response{
		BookingID: req.BookingID,
		FromRoom:  "A-101",
		ToRoom:    "B-201",
		Message:   "Booking moved from A-101 to B-201",
	}, nil
}

var testNow = time.Date(2025, 10, 12, 12, 0, 0, 0, time.UTC)

func testRoom() *domain.Room {
	return &domain.Room{
		ID:   1,
		Name: "A-101",
		Equipment: []domain.Equipment{
			{ID: 10, RoomID: 1, Name: "Standard Projector"},
		},
	}
}

func newTestUseCase(rooms *fakeRoomRepo, bookings *fakeBookingRepo, relocator *fakeRelocator) *UseCase {
	uc := NewUseCase(rooms, bookings, relocator, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}
	return uc
}

func TestExecute_BrokenRelocatesAffected(t *testing.T) {
	rooms := &fakeRoomRepo{room: testRoom()}
	bookings := &fakeBookingRepo{affected: []*domain.Booking{
		{ID: 1, RoomID: 1, RequiresEquipment: true},
		{ID: 2, RoomID: 1, RequiresEquipment: true},
	}}
	relocator := &fakeRelocator{}
	uc := newTestUseCase(rooms, bookings, relocator)

	resp, err := uc.Execute(context.Background(), &Request{EquipmentID: 10, Broken: true})
	require.NoError(t, err)

	assert.True(t, rooms.brokenSet[10])
	assert.Equal(t, "Standard Projector", resp.EquipmentName)
	require.Len(t, resp.Relocations, 2)
	for _, outcome := range resp.Relocations {
		assert.True(t, outcome.Relocated)
		assert.Equal(t, "B-201", outcome.ToRoom)
	}

	// системный каскад: запросы без проверки владения
	for _, req := range relocator.requests {
		assert.Nil(t, req.TeacherID)
	}
}

func TestExecute_BrokenPartialRelocation(t *testing.T) {
	rooms := &fakeRoomRepo{room: testRoom()}
	bookings := &fakeBookingRepo{affected: []*domain.Booking{
		{ID: 1, RoomID: 1, RequiresEquipment: true},
		{ID: 2, RoomID: 1, RequiresEquipment: true},
	}}
	relocator := &fakeRelocator{stuck: map[int64]bool{2: true}}
	uc := newTestUseCase(rooms, bookings, relocator)

	resp, err := uc.Execute(context.Background(), &Request{EquipmentID: 10, Broken: true})
	require.NoError(t, err)

	require.Len(t, resp.Relocations, 2)
	assert.True(t, resp.Relocations[0].Relocated)
	assert.False(t, resp.Relocations[1].Relocated)
	assert.Empty(t, resp.Relocations[1].ToRoom)
	assert.Equal(t, "No suitable alternative room available", resp.Relocations[1].Message)
}

func TestExecute_RepairCancelsMaintenance(t *testing.T) {
	rooms := &fakeRoomRepo{room: testRoom()}
	bookings := &fakeBookingRepo{maintenanceFuture: 3}
	relocator := &fakeRelocator{}
	uc := newTestUseCase(rooms, bookings, relocator)

	resp, err := uc.Execute(context.Background(), &Request{EquipmentID: 10, Broken: false})
	require.NoError(t, err)

	assert.False(t, rooms.brokenSet[10])
	assert.Equal(t, int64(3), resp.CancelledMaintenance)
	assert.Empty(t, resp.Relocations)
	require.NotNil(t, bookings.deletedFrom)
	assert.Equal(t, testNow, *bookings.deletedFrom)
	assert.Empty(t, relocator.requests, "ремонт не должен запускать перемещения")
}

func TestExecute_EquipmentNotFound(t *testing.T) {
	rooms := &fakeRoomRepo{room: testRoom()}
	uc := newTestUseCase(rooms, &fakeBookingRepo{}, &fakeRelocator{})

	_, err := uc.Execute(context.Background(), &Request{EquipmentID: 99, Broken: true})
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
	assert.Empty(t, rooms.setBrokens)
}
