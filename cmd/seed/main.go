// seed inserts a few demo employees for local development.
// Upserts by email so it is safe to run repeatedly.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/employee-management-api/config"
	"github.com/oksasatya/employee-management-api/internal/domain/entity"
	mongoinfra "github.com/oksasatya/employee-management-api/internal/infrastructure/mongodb"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := mongoinfra.NewClient(ctx, cfg.MongoURI, cfg.MongoMaxPool, 10*time.Second)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	coll := client.Database(cfg.MongoDatabase).Collection("employees")

	demo := []*entity.Employee{
		entity.NewEmployee("Ada Lovelace", "12 Analytical Lane, London", "ada@example.com", "+44-20-0001", entity.ExtendedDetails{
			Age: 36, Salary: 92000, IsActive: true, JoiningDate: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC), DepartmentID: "engineering",
		}),
		entity.NewEmployee("Grace Hopper", "7 Compiler Court, Arlington", "grace@example.com", "+1-703-0002", entity.ExtendedDetails{
			Age: 45, Salary: 105000, IsActive: true, JoiningDate: time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC), DepartmentID: "engineering",
		}),
		entity.NewEmployee("Jean Bartik", "3 Ballistics Blvd, Philadelphia", "jean@example.com", "", entity.ExtendedDetails{
			Age: 29, Salary: 78000, IsActive: false, JoiningDate: time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC), DepartmentID: "research",
		}),
	}

	for _, emp := range demo {
		res, err := coll.UpdateOne(ctx,
			bson.M{"email": emp.Email},
			bson.M{"$setOnInsert": emp},
			options.Update().SetUpsert(true),
		)
		if err != nil {
			log.Fatalf("failed to seed %s: %v", emp.Email, err)
		}
		if res.UpsertedCount > 0 {
			fmt.Printf("seeded employee: email=%s name=%s\n", emp.Email, emp.Name)
		} else {
			fmt.Printf("employee already present: email=%s\n", emp.Email)
		}
	}
}
