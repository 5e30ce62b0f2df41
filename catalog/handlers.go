package catalog

import (
	"net/http"
	"strconv"

	"solevara/utils"

	"github.com/julienschmidt/httprouter"
)

// GetProducts lists the catalog; ?search=, ?category=, ?scentFamily= compose.
func GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	products := Filter(q.Get("search"), q.Get("category"), q.Get("scentFamily"))
	utils.RespondWithJSON(w, http.StatusOK, products)
}

func GetProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id, err := strconv.Atoi(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, ok := ByID(id)
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, product)
}

func GetScentFamilies(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, ScentFamilies)
}

func GetCategories(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, Categories)
}
