package contact

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"solevara/db"
	"solevara/models"
	"solevara/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// SubmitMessage stores a contact-form submission.
func SubmitMessage(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		log.Println("Contact decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	errs := make(map[string]string)
	if strings.TrimSpace(msg.Name) == "" {
		errs["name"] = "Name is required"
	}
	switch {
	case msg.Email == "":
		errs["email"] = "Email is required"
	case !emailRe.MatchString(msg.Email):
		errs["email"] = "Please enter a valid email"
	}
	if strings.TrimSpace(msg.Message) == "" {
		errs["message"] = "Message is required"
	}
	if len(errs) > 0 {
		utils.RespondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": errs})
		return
	}

	msg.UserID = utils.GetUserIDFromRequest(r)
	msg.CreatedAt = time.Now().Unix()
	if _, err := db.ContactCollection.InsertOne(ctx, msg); err != nil {
		log.Println("Contact InsertOne error:", err)
		http.Error(w, "Failed to store message", http.StatusInternalServerError)
		return
	}

	utils.SendResponse(w, http.StatusCreated, nil, "Message received", nil)
}

// ListMessages returns stored submissions, newest first. Admin only.
func ListMessages(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(100)
	cursor, err := db.ContactCollection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		log.Println("Contact Find error:", err)
		http.Error(w, "Could not retrieve messages", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var messages []models.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		log.Println("Contact cursor.All error:", err)
		http.Error(w, "Error reading messages", http.StatusInternalServerError)
		return
	}
	if len(messages) == 0 {
		messages = []models.ContactMessage{}
	}

	utils.RespondWithJSON(w, http.StatusOK, messages)
}
