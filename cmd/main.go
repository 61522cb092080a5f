package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/create_booking"
	createMaintenanceHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/create_maintenance"
	getAvailableSlotsHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_booking"
	getMaintenanceSlotsHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_maintenance_slots"
	getRoomHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_room"
	getRoomScheduleHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_room_schedule"
	getTeacherBookingsHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/get_teacher_bookings"
	listRoomsHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/list_rooms"
	relocateBookingHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/relocate_booking"
	reportEquipmentHandler "github.com/dmfaustino/DEI-RoomService/internal/api/handlers/report_equipment"
	"github.com/dmfaustino/DEI-RoomService/internal/api/middleware"
	"github.com/dmfaustino/DEI-RoomService/internal/config"
	bookingRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/booking"
	roomRepo "github.com/dmfaustino/DEI-RoomService/internal/infra/storage/room"
	staffServiceClient "github.com/dmfaustino/DEI-RoomService/internal/integrations/staffservice"
	bookingsService "github.com/dmfaustino/DEI-RoomService/internal/service/bookings"
	roomsService "github.com/dmfaustino/DEI-RoomService/internal/service/rooms"
	createBookingUC "github.com/dmfaustino/DEI-RoomService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/dmfaustino/DEI-RoomService/internal/usecase/get_available_slots"
	relocateBookingUC "github.com/dmfaustino/DEI-RoomService/internal/usecase/relocate_booking"
	reportEquipmentUC "github.com/dmfaustino/DEI-RoomService/internal/usecase/report_equipment"
	scheduleMaintenanceUC "github.com/dmfaustino/DEI-RoomService/internal/usecase/schedule_maintenance"
	"github.com/dmfaustino/DEI-RoomService/pkg/logger"
	"github.com/dmfaustino/DEI-RoomService/pkg/metrics"
	"github.com/dmfaustino/DEI-RoomService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting DEI-RoomService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Сбор статистики connection pool
	if cfg.Metrics.Enabled {
		metricsCollector.CollectDBStats(db, 15*time.Second, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем клиент StaffService
	staffClient := staffServiceClient.NewClient(
		cfg.StaffService.URL,
		time.Duration(cfg.StaffService.Timeout)*time.Second,
		log,
	)
	log.Info("StaffService client initialized (%s, timeout=%ds)",
		cfg.StaffService.URL, cfg.StaffService.Timeout)

	// Инициализируем репозитории и менеджер транзакций
	bookingRepository := bookingRepo.NewRepository(db)
	roomRepository := roomRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, roomRepository, staffClient, log)
	roomSvc := roomsService.NewService(roomRepository, log)

	// Инициализируем use cases
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(roomRepository, bookingRepository, log)
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, roomRepository, staffClient, txMgr, log)
	relocateBookingUseCase := relocateBookingUC.NewUseCase(bookingRepository, roomRepository, txMgr, log)
	scheduleMaintenanceUseCase := scheduleMaintenanceUC.NewUseCase(bookingRepository, roomRepository, txMgr, log)
	reportEquipmentUseCase := reportEquipmentUC.NewUseCase(roomRepository, bookingRepository, relocateBookingUseCase, log)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, metricsCollector, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	relocateBooking := relocateBookingHandler.NewHandler(relocateBookingUseCase, metricsCollector, log)
	getTeacherBookings := getTeacherBookingsHandler.NewHandler(bookingSvc, log)
	getRoomSchedule := getRoomScheduleHandler.NewHandler(bookingSvc, log)
	listRooms := listRoomsHandler.NewHandler(roomSvc, log)
	getRoom := getRoomHandler.NewHandler(roomSvc, log)
	getMaintenanceSlots := getMaintenanceSlotsHandler.NewHandler(scheduleMaintenanceUseCase, metricsCollector, log)
	createMaintenance := createMaintenanceHandler.NewHandler(scheduleMaintenanceUseCase, metricsCollector, log)
	reportEquipment := reportEquipmentHandler.NewHandler(reportEquipmentUseCase, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Справочник комнат и расписания
	api.HandleFunc("/rooms", listRooms.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}", getRoom.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/schedule", getRoomSchedule.Handle).Methods(http.MethodGet)

	// Поиск доступных слотов
	api.HandleFunc("/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Бронирование по ID
	api.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Окна обслуживания (для техперсонала)
	api.HandleFunc("/rooms/{roomId}/maintenance-slots", getMaintenanceSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/rooms/{roomId}/maintenance", createMaintenance.Handle).Methods(http.MethodPost)

	// Состояние оборудования (для техперсонала)
	api.HandleFunc("/equipment/{equipmentId}", reportEquipment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// PROTECTED ROUTES (требуют X-Teacher-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}", cancelBooking.Handle).Methods(http.MethodDelete)

	// Перемещение бронирования в другую комнату
	protected.HandleFunc("/bookings/{bookingId}/relocate", relocateBooking.Handle).Methods(http.MethodPost)

	// Бронирования преподавателя
	protected.HandleFunc("/teachers/{teacherId}/bookings", getTeacherBookings.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
