package admin

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"solevara/db"
	"solevara/models"
	"solevara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListOrders returns paginated orders, newest first.
func ListOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 20
	}
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	if skip < 0 {
		skip = 0
	}

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip))

	cursor, err := db.OrderCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("ListOrders Find error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("ListOrders cursor.All error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"orders": orders})
}

// GetStats aggregates order count, revenue, and items sold.
func GetStats(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetStats Find error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetStats cursor.All error:", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	revenue := 0.0
	itemsSold := 0
	for _, o := range orders {
		revenue += o.Total
		for _, l := range o.Lines {
			itemsSold += l.Quantity
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"orderCount": len(orders),
		"revenue":    revenue,
		"itemsSold":  itemsSold,
	})
}
