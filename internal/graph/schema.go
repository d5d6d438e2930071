package graph

import (
	"errors"
	"net/http"

	"github.com/graphql-go/graphql"
	gqlhandler "github.com/graphql-go/handler"

	"github.com/mavesys/foodcourt-api/internal/model"
	"github.com/mavesys/foodcourt-api/internal/repository"
	"github.com/mavesys/foodcourt-api/internal/usecase"
)

// NewHandler builds the /graphql endpoint. The schema is a thin adapter over
// the same user usecase the REST handlers call; there is no separate user
// store behind it.
func NewHandler(userUsecase usecase.UserUsecase) (http.Handler, error) {
	schema, err := newSchema(userUsecase)
	if err != nil {
		return nil, err
	}

	return gqlhandler.New(&gqlhandler.Config{
		Schema:   schema,
		Pretty:   true,
		GraphiQL: true,
	}), nil
}

func newSchema(userUsecase usecase.UserUsecase) (*graphql.Schema, error) {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type: graphql.NewNonNull(graphql.ID),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					user, ok := p.Source.(*model.User)
					if !ok {
						return nil, errors.New("invalid user source")
					}
					return user.ID.Hex(), nil
				},
			},
			"username": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(*model.User).Username, nil
				},
			},
			"email": &graphql.Field{
				Type: graphql.NewNonNull(graphql.String),
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(*model.User).Email, nil
				},
			},
			"firstName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(*model.User).FirstName, nil
				},
			},
			"lastName": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(*model.User).LastName, nil
				},
			},
			"profilePic": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (any, error) {
					return p.Source.(*model.User).ProfilePic, nil
				},
			},
		},
	})

	paginationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Pagination",
		Fields: graphql.Fields{
			"currentPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"totalPages":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"totalUser":   &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		},
	})

	usersResponseType := graphql.NewObject(graphql.ObjectConfig{
		Name: "UsersResponse",
		Fields: graphql.Fields{
			"users":      &graphql.Field{Type: graphql.NewList(userType)},
			"pagination": &graphql.Field{Type: paginationType},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"users": &graphql.Field{
				Type: usersResponseType,
				Args: graphql.FieldConfigArgument{
					"page":  &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 1},
					"limit": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 10},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					page := repository.Page{
						Number: int64(p.Args["page"].(int)),
						Limit:  int64(p.Args["limit"].(int)),
					}.Normalize()

					users, total, err := userUsecase.ListUsers(p.Context, page)
					if err != nil {
						return nil, err
					}

					return map[string]any{
						"users": users,
						"pagination": map[string]any{
							"currentPage": page.Number,
							"totalPages":  page.TotalPages(total),
							"totalUser":   total,
						},
					}, nil
				},
			},
			"userById": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					user, err := userUsecase.GetUser(p.Context, p.Args["id"].(string))
					if err != nil {
						if errors.Is(err, usecase.ErrUserNotFound) {
							return nil, errors.New("User not found")
						}
						return nil, err
					}
					return user, nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"createUser": &graphql.Field{
				Type: userType,
				Args: graphql.FieldConfigArgument{
					"username":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"email":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"password":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"firstName": &graphql.ArgumentConfig{Type: graphql.String},
					"lastName":  &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (any, error) {
					params := usecase.RegisterParams{
						Username: p.Args["username"].(string),
						Email:    p.Args["email"].(string),
						Password: p.Args["password"].(string),
					}
					if v, ok := p.Args["firstName"].(string); ok {
						params.FirstName = v
					}
					if v, ok := p.Args["lastName"].(string); ok {
						params.LastName = v
					}

					user, err := userUsecase.CreateUser(p.Context, params)
					if err != nil {
						if errors.Is(err, usecase.ErrUserAlreadyExists) {
							return nil, errors.New("User already exists")
						}
						return nil, err
					}
					return user, nil
				},
			},
		},
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
	if err != nil {
		return nil, err
	}

	return &schema, nil
}
