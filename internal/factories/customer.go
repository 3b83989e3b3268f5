package factories

import (
	"math/rand"
	"strconv"

	"github.com/jaswdr/faker"
	"github.com/skylark-hq/skylark/internal/models"
)

var fake = faker.New()

type CustomerFactory struct{}

// CreateCustomerInfo fabricates a valid customer: name, phone, a random
// service type, and a table number when the service type demands one.
func (cf *CustomerFactory) CreateCustomerInfo(rng *rand.Rand) models.CustomerInfo {
	serviceTypes := []models.ServiceType{
		models.ServiceDineIn,
		models.ServiceTakeaway,
		models.ServiceDelivery,
	}

	info := models.CustomerInfo{
		Name:        fake.Person().Name(),
		Phone:       fake.Phone().Number(),
		ServiceType: serviceTypes[rng.Intn(len(serviceTypes))],
	}
	if info.ServiceType == models.ServiceDineIn {
		info.TableNumber = strconv.Itoa(rng.Intn(12) + 1)
	}
	return info
}

// PickAvailable returns up to n distinct available menu items.
func PickAvailable(menu []models.MenuItem, n int, rng *rand.Rand) []models.MenuItem {
	var available []models.MenuItem
	for _, item := range menu {
		if item.Available {
			available = append(available, item)
		}
	}
	rng.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})
	if n > len(available) {
		n = len(available)
	}
	return available[:n]
}
