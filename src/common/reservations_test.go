package common

import (
	"context"
	"erbs/src/db"
	"erbs/src/models"
	"erbs/src/types"
	"log"
	"regexp"
	"sync"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type CoordinatorTestSuite struct {
	suite.Suite
	DB *gorm.DB
}

func (s *CoordinatorTestSuite) SetupSuite() {
	d, err := gorm.Open(sqlite.Open("file:coordinatortest?mode=memory&cache=shared"), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error opening test database: %s\n", err.Error())
	}
	inner, err := d.DB()
	if err != nil {
		log.Fatalf("Error accessing inner db instance: %s\n", err.Error())
	}
	inner.SetMaxIdleConns(1)
	inner.SetMaxOpenConns(1)

	if err := d.AutoMigrate(&models.Slot{}, &models.Booking{}); err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}
	db.NewDB(d)
	s.DB = d
}

func (s *CoordinatorTestSuite) addSlot(room, date, start string) *models.Slot {
	slot, err := AddSlot(context.Background(), &types.CreateSlotRequestBody{
		Room:        room,
		Date:        date,
		StartTime:   start,
		DurationMin: 60,
	})
	s.Require().NoError(err)
	s.Require().False(slot.Booked)
	return slot
}

func booking(room, date, start, name string) *types.CreateBookingRequestBody {
	return &types.CreateBookingRequestBody{
		Room:      room,
		Date:      date,
		StartTime: start,
		EndTime:   "11:00",
		Name:      name,
		Email:     name + "@example.com",
	}
}

func (s *CoordinatorTestSuite) TestListSlotsOrdered() {
	for _, start := range []string{"14:00", "09:00", "11:30"} {
		s.addSlot("Vault", "2024-03-01", start)
	}
	slots, err := ListSlots(context.Background(), "Vault", "2024-03-01")
	s.Require().NoError(err)
	s.Require().Len(slots, 3)
	assert.Equal(s.T(), "09:00", slots[0].StartTime)
	assert.Equal(s.T(), "11:30", slots[1].StartTime)
	assert.Equal(s.T(), "14:00", slots[2].StartTime)

	empty, err := ListSlots(context.Background(), "Vault", "2030-01-01")
	s.Require().NoError(err)
	assert.Empty(s.T(), empty)
}

func (s *CoordinatorTestSuite) TestReserveFlipsSlotAndCreatesBooking() {
	slot := s.addSlot("Cellar", "2024-01-01", "10:00")

	b, err := ReserveSlot(context.Background(), booking("Cellar", "2024-01-01", "10:00", "alice"))
	s.Require().NoError(err)
	assert.Equal(s.T(), slot.ID, b.SlotID)
	assert.NotEmpty(s.T(), b.Reference)
	assert.EqualValues(s.T(), 1, b.Persons)

	var got models.Slot
	s.Require().NoError(s.DB.First(&got, slot.ID).Error)
	assert.True(s.T(), got.Booked)

	_, err = ReserveSlot(context.Background(), booking("Cellar", "2024-01-01", "10:00", "bob"))
	assert.ErrorIs(s.T(), err, ErrAlreadyBooked)

	var count int64
	s.Require().NoError(s.DB.Model(&models.Booking{}).Where(&models.Booking{SlotID: slot.ID}).Count(&count).Error)
	assert.EqualValues(s.T(), 1, count)
}

func (s *CoordinatorTestSuite) TestAddDuplicateSlot() {
	s.addSlot("Crypt", "2024-09-09", "10:00")
	_, err := AddSlot(context.Background(), &types.CreateSlotRequestBody{
		Room:        "Crypt",
		Date:        "2024-09-09",
		StartTime:   "10:00",
		DurationMin: 30,
	})
	assert.ErrorIs(s.T(), err, ErrSlotExists)
}

func (s *CoordinatorTestSuite) TestReserveUnknownSlot() {
	_, err := ReserveSlot(context.Background(), booking("Attic", "2024-01-01", "10:00", "carol"))
	assert.ErrorIs(s.T(), err, ErrSlotNotFound)
}

func (s *CoordinatorTestSuite) TestReserveRaceHasOneWinner() {
	s.addSlot("Lab", "2024-02-02", "18:00")

	const workers = 8
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = ReserveSlot(context.Background(), booking("Lab", "2024-02-02", "18:00", "racer"))
		}(i)
	}
	wg.Wait()

	wins, losses := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(s.T(), err, ErrAlreadyBooked)
			losses++
		}
	}
	assert.Equal(s.T(), 1, wins)
	assert.Equal(s.T(), workers-1, losses)
}

func (s *CoordinatorTestSuite) TestDeleteSlot() {
	slot := s.addSlot("Mine", "2024-04-04", "12:00")
	s.Require().NoError(DeleteSlot(context.Background(), slot.ID))

	err := DeleteSlot(context.Background(), slot.ID)
	assert.ErrorIs(s.T(), err, ErrSlotNotFound)
}

func (s *CoordinatorTestSuite) TestDeleteBookedSlotKeepsBooking() {
	slot := s.addSlot("Tower", "2024-05-05", "16:00")
	_, err := ReserveSlot(context.Background(), booking("Tower", "2024-05-05", "16:00", "dave"))
	s.Require().NoError(err)

	s.Require().NoError(DeleteSlot(context.Background(), slot.ID))

	var count int64
	s.Require().NoError(s.DB.Model(&models.Booking{}).Where(&models.Booking{SlotID: slot.ID}).Count(&count).Error)
	assert.EqualValues(s.T(), 1, count)
}

func (s *CoordinatorTestSuite) TestListBookingsFilterAndOrder() {
	s.addSlot("Dock", "2024-06-02", "10:00")
	s.addSlot("Dock", "2024-06-01", "10:00")
	_, err := ReserveSlot(context.Background(), booking("Dock", "2024-06-02", "10:00", "erin"))
	s.Require().NoError(err)
	_, err = ReserveSlot(context.Background(), booking("Dock", "2024-06-01", "10:00", "frank"))
	s.Require().NoError(err)

	bookings, err := ListBookings(context.Background(), "Dock")
	s.Require().NoError(err)
	s.Require().Len(bookings, 2)
	assert.Equal(s.T(), "2024-06-01", bookings[0].Date)
	assert.Equal(s.T(), "2024-06-02", bookings[1].Date)

	all, err := ListBookings(context.Background(), "")
	s.Require().NoError(err)
	assert.GreaterOrEqual(s.T(), len(all), 2)
}

func TestCoordinatorRunner(t *testing.T) {
	suite.Run(t, new(CoordinatorTestSuite))
}

// TestReserveStorageFailure drives the coordinator against a stubbed
// connection that fails mid-transaction and expects the sanitized
// storage error with a clean rollback.
func TestReserveStorageFailure(t *testing.T) {
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening a stub database connection", err)
	}
	mock.ExpectQuery(regexp.QuoteMeta("select sqlite_version()")).
		WillReturnRows(sqlmock.NewRows([]string{"sqlite_version()"}).AddRow("3.45.1"))

	gormDB, err := gorm.Open(sqlite.Dialector{Conn: conn}, &gorm.Config{})
	if err != nil {
		t.Fatalf("An error '%s' was not expected when opening gorm database", err)
	}
	prev := db.GetDb()
	db.NewDB(gormDB)
	defer db.NewDB(prev)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `slots`").WillReturnError(sqlite3BusyErr{})
	mock.ExpectRollback()

	_, err = ReserveSlot(context.Background(), booking("Stub", "2024-01-01", "10:00", "gina"))
	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

type sqlite3BusyErr struct{}

func (sqlite3BusyErr) Error() string { return "database is locked" }
