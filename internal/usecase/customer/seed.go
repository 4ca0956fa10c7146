package customer

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/devsquadbr/crm-template/internal/models"
)

var (
	seedFirstNames = []string{
		"Ana", "Bruno", "Carla", "Diego", "Elena", "Felipe", "Gina",
		"Hugo", "Iris", "Jonas", "Karen", "Lucas", "Marta", "Nina",
	}
	seedLastNames = []string{
		"Silva", "Costa", "Moraes", "Pereira", "Rocha", "Santos",
		"Tavares", "Vieira", "Almeida", "Barros",
	}
	seedCities = []string{
		"Springfield", "Rivertown", "Lakeside", "Hillview", "Oakdale",
	}
	seedStates = []string{"CA", "NY", "TX", "WA", "OR", "FL"}
)

// Seed inserts number fake customers for the caller. Development helper.
func (s *Service) Seed(ctx context.Context, ownerID string, number int) error {
	for i := 0; i < number; i++ {
		first := seedFirstNames[rand.Intn(len(seedFirstNames))]
		last := seedLastNames[rand.Intn(len(seedLastNames))]

		birth := time.Date(
			1940+rand.Intn(65), time.Month(1+rand.Intn(12)), 1+rand.Intn(28),
			0, 0, 0, 0, time.UTC,
		)

		gender := models.GenderNotSpecified
		switch rand.Intn(3) {
		case 1:
			gender = models.GenderMale
		case 2:
			gender = models.GenderFemale
		}

		customer := models.Customer{
			OwnerID:   ownerID,
			Name:      first + " " + last,
			Email:     fmt.Sprintf("%s.%s%d@example.com", first, last, rand.Intn(1000)),
			Phone:     fmt.Sprintf("%010d", 1111111111+rand.Int63n(8888888888)),
			Address:   fmt.Sprintf("%d Main St", 100+rand.Intn(9900)),
			City:      seedCities[rand.Intn(len(seedCities))],
			State:     seedStates[rand.Intn(len(seedStates))],
			Postal:    fmt.Sprintf("%05d", 11111+rand.Intn(88888)),
			BirthDate: &birth,
			Notes:     "seeded record",
			Gender:    gender,
			Active:    rand.Intn(2) == 1,
			CreatedOn: time.Now().UTC(),
		}

		if err := s.repo.Create(ctx, &customer); err != nil {
			return err
		}
	}

	return nil
}
