package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/consultarprocessos/CP-SchedulingService/internal/config"
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// Наполняет базу демонстрационными данными: слоты на ближайшие две недели
// и несколько агендаментов поверх части слотов
func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("seed starting")

	_ = godotenv.Load()

	cfg, err := config.Load("config.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("ping postgres: %v", err)
	}

	gofakeit.Seed(time.Now().UnixNano())

	slotIDs, err := seedSlots(context.Background(), db, 14)
	if err != nil {
		log.Fatalf("seed slots: %v", err)
	}
	if err := seedAppointments(context.Background(), db, slotIDs, 10); err != nil {
		log.Fatalf("seed appointments: %v", err)
	}

	log.Println("seed complete")
}

// seedSlots создает часовые слоты 09:00-18:00 по будням на days дней вперед
func seedSlots(ctx context.Context, db *sql.DB, days int) ([]string, error) {
	log.Printf("seeding slots for %d days", days)

	modes := []domain.ConsultationMode{
		domain.ModeOnline,
		domain.ModeInPerson,
		domain.ModeBoth,
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var ids []string
	day := time.Now().AddDate(0, 0, 1)

	for d := 0; d < days; d++ {
		date := day.AddDate(0, 0, d)
		if date.Weekday() == time.Saturday || date.Weekday() == time.Sunday {
			continue
		}

		for hour := 9; hour < 18; hour++ {
			id := uuid.NewString()
			start := types.TimeString(time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format(domain.TimeFormat))
			end := types.TimeString(time.Date(0, 1, 1, hour+1, 0, 0, 0, time.UTC).Format(domain.TimeFormat))
			mode := modes[gofakeit.Number(0, len(modes)-1)]

			_, err := tx.ExecContext(ctx, `
				INSERT INTO slots (id, slot_date, start_time, end_time, duration_minutes, allowed_mode, available, created_at, updated_at)
				VALUES ($1, $2, $3, $4, $5, $6, true, NOW(), NOW())
			`, id, date.Format(domain.DateFormat), start, end, domain.SlotDuration60, mode)
			if err != nil {
				return nil, err
			}

			ids = append(ids, id)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	log.Printf("slots seeded: %d", len(ids))
	return ids, nil
}

// seedAppointments бронирует count случайных слотов фиктивными клиентами
func seedAppointments(ctx context.Context, db *sql.DB, slotIDs []string, count int) error {
	log.Printf("seeding %d appointments", count)

	if count > len(slotIDs) {
		count = len(slotIDs)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Берем случайные слоты без повторов
	picked := map[int]bool{}
	for booked := 0; booked < count; {
		i := gofakeit.Number(0, len(slotIDs)-1)
		if picked[i] {
			continue
		}
		picked[i] = true
		booked++

		slotID := slotIDs[i]

		var (
			date  time.Time
			start types.TimeString
			end   types.TimeString
		)
		row := tx.QueryRowContext(ctx,
			`UPDATE slots SET available = false, updated_at = NOW()
			 WHERE id = $1
			 RETURNING slot_date, start_time, end_time`, slotID)
		if err := row.Scan(&date, &start, &end); err != nil {
			return err
		}

		processRef := gofakeit.Numerify("#######-##.####.8.26.####")

		_, err := tx.ExecContext(ctx, `
			INSERT INTO appointments (id, slot_id, client_id, client_name, process_reference, appointment_date, start_time, end_time, mode, notes, origin, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NULL, $10, $11, NOW(), NOW())
		`,
			uuid.NewString(),
			slotID,
			uuid.NewString(),
			gofakeit.Name(),
			processRef,
			date.Format(domain.DateFormat),
			start,
			end,
			domain.ModeOnline,
			domain.OriginSite,
			domain.StatusScheduled,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	log.Println("appointments seeded")
	return nil
}
