package main

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/agendafacil/booking-platform/internal/adapters/database"
	"github.com/agendafacil/booking-platform/internal/adapters/kvstore"
	"github.com/agendafacil/booking-platform/internal/domain/entities"
	"github.com/agendafacil/booking-platform/internal/domain/providers"
	"github.com/agendafacil/booking-platform/internal/infrastructure/clients/postgres"
	"github.com/agendafacil/booking-platform/internal/infrastructure/clients/redis"
	"github.com/agendafacil/booking-platform/pkg/config"
)

// Seeds the configured store with a small demo data set: two institutions,
// a handful of services across categories and one client with a booking.

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var store providers.KVStore
	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		pgClient, err := postgres.NewClient(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to DB: %v", err)
		}
		defer pgClient.Close()

		pgStore := kvstore.NewPostgresStore(pgClient)
		if err := pgStore.EnsureSchema(ctx); err != nil {
			log.Fatalf("Failed to ensure schema: %v", err)
		}
		store = pgStore
	case config.StoreBackendRedis:
		redisClient, err := redis.NewClient(&cfg.Redis)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		store = kvstore.NewRedisStore(redisClient)
	default:
		log.Fatalf("Seeding requires a persistent store backend, got %q", cfg.Store.Backend)
	}

	users := database.NewUserAdapter(store)
	institutions := database.NewInstitutionAdapter(store)
	services := database.NewServiceAdapter(store)
	appointments := database.NewAppointmentAdapter(store)
	notifications := database.NewNotificationAdapter(store)

	now := time.Now().UTC()

	ownerID := uuid.New().String()
	clinicID := uuid.New().String()
	labID := uuid.New().String()

	owner := &entities.User{
		ID:            ownerID,
		Email:         "contato@clinicavidanova.com.br",
		Name:          "Clínica Vida Nova",
		AccountType:   entities.AccountTypeInstitution,
		InstitutionID: &clinicID,
		Favorites:     []string{},
		CreatedAt:     now,
	}
	if err := users.Create(ctx, owner); err != nil {
		log.Fatalf("Failed to seed owner: %v", err)
	}

	for _, institution := range []*entities.Institution{
		{
			ID:          clinicID,
			UserID:      ownerID,
			Name:        "Clínica Vida Nova",
			Description: "Clínica geral com atendimento multidisciplinar",
			Address:     "Av. Paulista, 1000 - São Paulo, SP",
			Phone:       "(11) 3456-7890",
			CreatedAt:   now,
		},
		{
			ID:          labID,
			UserID:      ownerID,
			Name:        "Laboratório Santé",
			Description: "Exames laboratoriais e diagnóstico por imagem",
			Address:     "Rua Augusta, 500 - São Paulo, SP",
			Phone:       "(11) 2345-6789",
			CreatedAt:   now,
		},
	} {
		if err := institutions.Create(ctx, institution); err != nil {
			log.Fatalf("Failed to seed institution %s: %v", institution.Name, err)
		}
	}

	seedServices := []*entities.Service{
		{
			Name:            "Limpeza Dental",
			Category:        "Odontologia",
			Description:     "Profilaxia completa com remoção de tártaro",
			InstitutionID:   clinicID,
			InstitutionName: "Clínica Vida Nova",
			Location:        "Av. Paulista, 1000 - São Paulo, SP",
		},
		{
			Name:            "Consulta Cardiológica",
			Category:        "Cardiologia",
			Description:     "Avaliação cardiológica com eletrocardiograma",
			InstitutionID:   clinicID,
			InstitutionName: "Clínica Vida Nova",
			Location:        "Av. Paulista, 1000 - São Paulo, SP",
		},
		{
			Name:            "Consulta Pediátrica",
			Category:        "Pediatria",
			Description:     "Acompanhamento do desenvolvimento infantil",
			InstitutionID:   clinicID,
			InstitutionName: "Clínica Vida Nova",
			Location:        "Av. Paulista, 1000 - São Paulo, SP",
		},
		{
			Name:            "Exame de Sangue Completo",
			Category:        "Outros",
			Description:     "Hemograma completo com resultado em 24h",
			InstitutionID:   labID,
			InstitutionName: "Laboratório Santé",
			Location:        "Rua Augusta, 500 - São Paulo, SP",
		},
	}
	for _, service := range seedServices {
		service.ID = uuid.New().String()
		service.CreatedAt = now
		if err := services.Create(ctx, service); err != nil {
			log.Fatalf("Failed to seed service %s: %v", service.Name, err)
		}
	}

	clientID := uuid.New().String()
	client := &entities.User{
		ID:          clientID,
		Email:       "maria.silva@example.com",
		Name:        "Maria Silva",
		AccountType: entities.AccountTypeClient,
		Favorites:   []string{seedServices[0].ID},
		CreatedAt:   now,
	}
	if err := users.Create(ctx, client); err != nil {
		log.Fatalf("Failed to seed client: %v", err)
	}

	appointment := &entities.Appointment{
		ID:              uuid.New().String(),
		UserID:          clientID,
		ServiceID:       seedServices[0].ID,
		ServiceName:     seedServices[0].Name,
		InstitutionName: seedServices[0].InstitutionName,
		Date:            now.AddDate(0, 0, 7).Format("2006-01-02"),
		Time:            "14:00",
		Status:          entities.AppointmentStatusPending,
		CreatedAt:       now,
	}
	if err := appointments.Create(ctx, appointment); err != nil {
		log.Fatalf("Failed to seed appointment: %v", err)
	}

	notification := &entities.Notification{
		ID:        uuid.New().String(),
		UserID:    clientID,
		Type:      entities.NotificationTypeAppointment,
		Title:     "Agendamento Confirmado",
		Message:   "Seu agendamento para Limpeza Dental foi criado com sucesso!",
		Read:      false,
		CreatedAt: now,
		RelatedID: &appointment.ID,
	}
	if err := notifications.Create(ctx, notification); err != nil {
		log.Fatalf("Failed to seed notification: %v", err)
	}

	log.Printf("Seeded %d institutions, %d services, 2 users, 1 appointment", 2, len(seedServices))
}
