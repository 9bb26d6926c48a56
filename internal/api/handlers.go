package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// createHandler binds the request body (JSON or multipart, by Content-Type)
// and answers 201 with the created document.
func createHandler[R any, T any](create func(context.Context, *R) (T, error), message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBind(&req); err != nil {
			respondBindError(c, err)
			return
		}

		doc, err := create(c.Request.Context(), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusCreated, message, doc)
	}
}

func listHandler[T any](list func(context.Context) ([]T, error), message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		docs, err := list(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, message, docs)
	}
}

func getHandler[T any](get func(context.Context, string) (T, error), message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, message, doc)
	}
}

func updateHandler[R any, T any](update func(context.Context, string, *R) (T, error), message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req R
		if err := c.ShouldBind(&req); err != nil {
			respondBindError(c, err)
			return
		}

		doc, err := update(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, message, doc)
	}
}

func deleteHandler(remove func(context.Context, string) error, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := remove(c.Request.Context(), c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		respond(c, http.StatusOK, message, nil)
	}
}
