package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery/internal/service"
)

// @Summary Full catalog state
// @Description Categories, products and seasonal products loaded once at startup. Error is set when a placeholder or cached catalog is served.
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.State
// @Router /catalog [get]
func (s *Server) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, s.catalog.State(c))
}

// @Summary Category with its products
// @Tags catalog
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} service.CategoryView
// @Failure 404 {object} map[string]string
// @Router /categories/{slug} [get]
func (s *Server) getCategory(c *gin.Context) {
	v, err := s.catalog.Category(c, c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary Product with category and related products
// @Tags catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} service.ProductView
// @Failure 404 {object} map[string]string
// @Router /products/{id} [get]
func (s *Server) getProduct(c *gin.Context) {
	v, err := s.catalog.Product(c, c.Param("id"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// @Summary List products
// @Tags catalog
// @Produce json
// @Param category query string false "Category slug"
// @Param q query string false "Name contains"
// @Param featured query bool false "Only featured"
// @Param seasonal query bool false "Only seasonal"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (s *Server) listProducts(c *gin.Context) {
	f := service.ProductFilter{
		Category:      c.Query("category"),
		NameSubstring: c.Query("q"),
	}
	if v, err := strconv.ParseBool(c.Query("featured")); err == nil {
		f.Featured = v
	}
	if v, err := strconv.ParseBool(c.Query("seasonal")); err == nil {
		f.Seasonal = v
	}
	c.JSON(http.StatusOK, s.catalog.List(c, f))
}
