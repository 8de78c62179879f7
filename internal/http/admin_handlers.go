package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bakery/internal/backend"
)

// respondResource backend may answer mutations without a body
func respondResource[T any](c *gin.Context, status int, v *T) {
	if v == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(status, v)
}

// @Summary List categories
// @Tags admin
// @Security BasicAuth
// @Produce json
// @Success 200 {array} backend.Categoria
// @Failure 502 {object} map[string]string
// @Router /admin/categories [get]
func (s *Server) adminListCategories(c *gin.Context) {
	list, err := s.admin.ListCategories(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get category
// @Tags admin
// @Security BasicAuth
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} backend.Categoria
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{slug} [get]
func (s *Server) adminGetCategory(c *gin.Context) {
	out, err := s.admin.GetCategory(c, c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create category
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param input body backend.Categoria true "Category"
// @Success 201 {object} backend.Categoria
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/categories [post]
func (s *Server) adminCreateCategory(c *gin.Context) {
	var req backend.Categoria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.CreateCategory(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusCreated, out)
}

// @Summary Update category
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param slug path string true "Category slug"
// @Param input body backend.Categoria true "Category"
// @Success 200 {object} backend.Categoria
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/categories/{slug} [put]
func (s *Server) adminUpdateCategory(c *gin.Context) {
	var req backend.Categoria
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.UpdateCategory(c, c.Param("slug"), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusOK, out)
}

// @Summary Delete category
// @Tags admin
// @Security BasicAuth
// @Param slug path string true "Category slug"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /admin/categories/{slug} [delete]
func (s *Server) adminDeleteCategory(c *gin.Context) {
	if err := s.admin.DeleteCategory(c, c.Param("slug")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List products
// @Tags admin
// @Security BasicAuth
// @Produce json
// @Success 200 {array} backend.Producto
// @Router /admin/products [get]
func (s *Server) adminListProducts(c *gin.Context) {
	list, err := s.admin.ListProducts(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Get product
// @Tags admin
// @Security BasicAuth
// @Produce json
// @Param slug path string true "Product slug"
// @Success 200 {object} backend.Producto
// @Failure 404 {object} map[string]string
// @Router /admin/products/{slug} [get]
func (s *Server) adminGetProduct(c *gin.Context) {
	out, err := s.admin.GetProduct(c, c.Param("slug"))
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// @Summary Create product
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param input body backend.Producto true "Product"
// @Success 201 {object} backend.Producto
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/products [post]
func (s *Server) adminCreateProduct(c *gin.Context) {
	var req backend.Producto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.CreateProduct(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusCreated, out)
}

// @Summary Update product
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param slug path string true "Product slug"
// @Param input body backend.Producto true "Product"
// @Success 200 {object} backend.Producto
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/products/{slug} [put]
func (s *Server) adminUpdateProduct(c *gin.Context) {
	var req backend.Producto
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.UpdateProduct(c, c.Param("slug"), req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusOK, out)
}

// @Summary Delete product
// @Tags admin
// @Security BasicAuth
// @Param slug path string true "Product slug"
// @Success 204
// @Router /admin/products/{slug} [delete]
func (s *Server) adminDeleteProduct(c *gin.Context) {
	if err := s.admin.DeleteProduct(c, c.Param("slug")); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List prices
// @Tags admin
// @Security BasicAuth
// @Produce json
// @Success 200 {array} backend.Precio
// @Router /admin/prices [get]
func (s *Server) adminListPrices(c *gin.Context) {
	list, err := s.admin.ListPrices(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// @Summary Create price
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param input body backend.Precio true "Price"
// @Success 201 {object} backend.Precio
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/prices [post]
func (s *Server) adminCreatePrice(c *gin.Context) {
	var req backend.Precio
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.CreatePrice(c, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusCreated, out)
}

// @Summary Update price
// @Tags admin
// @Security BasicAuth
// @Accept json
// @Produce json
// @Param id path int true "Price ID"
// @Param input body backend.Precio true "Price"
// @Success 200 {object} backend.Precio
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /admin/prices/{id} [put]
func (s *Server) adminUpdatePrice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var req backend.Precio
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	out, err := s.admin.UpdatePrice(c, id, req)
	if err != nil {
		s.fail(c, err)
		return
	}
	respondResource(c, http.StatusOK, out)
}

// @Summary Delete price
// @Tags admin
// @Security BasicAuth
// @Param id path int true "Price ID"
// @Success 204
// @Router /admin/prices/{id} [delete]
func (s *Server) adminDeletePrice(c *gin.Context) {
	id, err := parseID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	if err := s.admin.DeletePrice(c, id); err != nil {
		s.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
