// Package graphql builds the executable schema and the HTTP handler that
// serves it. Resolvers are plain functions registered per type in field
// maps; every resolver receives the parent value, the coerced arguments,
// and the request context, and never reaches for ambient state.
package graphql

import (
	"context"
	"fmt"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/morningfm/front/internal/domain"
	"github.com/morningfm/front/internal/service/listens"
	"github.com/morningfm/front/internal/transport/graphql/dataloader"
)

// listensService defines what the schema needs from the listens service.
type listensService interface {
	GetListen(ctx context.Context, id string) (domain.Listen, error)
	GetPage(ctx context.Context, args listens.PageArgs) (*listens.Page, error)
	SubmitListen(ctx context.Context, input domain.ListenInput) (domain.Listen, error)
}

// sunlightService defines what the schema needs from the sunlight service.
type sunlightService interface {
	GetWindow(ctx context.Context, ianaTimezone string, onDate time.Time) (domain.SunlightWindow, error)
}

// NewSchema builds the executable schema over the two services. Song
// lookups go through the per-request dataloader installed by the handler.
func NewSchema(listensSvc listensService, sunlightSvc sunlightService) (graphql.Schema, error) {
	musicProviderEnum := graphql.NewEnum(graphql.EnumConfig{
		Name:        "MusicProvider",
		Description: "The catalog a song belongs to.",
		Values: graphql.EnumValueConfigMap{
			domain.MusicProviderSpotify.String(): &graphql.EnumValueConfig{
				Value: domain.MusicProviderSpotify,
			},
		},
	})

	songType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Song",
		Description: "A song from a music provider.",
		Fields: graphql.Fields{
			"id":            &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"musicProvider": &graphql.Field{Type: musicProviderEnum},
			"name":          &graphql.Field{Type: graphql.String},
			"artistName":    &graphql.Field{Type: graphql.String},
			"albumName":     &graphql.Field{Type: graphql.String},
			"imageLargeUrl": &graphql.Field{
				Type:    graphql.String,
				Resolve: resolveSongImage(domain.ImageSizeLarge),
			},
			"imageMediumUrl": &graphql.Field{
				Type:    graphql.String,
				Resolve: resolveSongImage(domain.ImageSizeMedium),
			},
			"imageSmallUrl": &graphql.Field{
				Type:    graphql.String,
				Resolve: resolveSongImage(domain.ImageSizeSmall),
			},
		},
	})

	listenType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "Listen",
		Description: "A listen submitted by a user.",
		Fields: graphql.Fields{
			"id": &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"song": &graphql.Field{
				Type:    songType,
				Resolve: resolveListenSong,
			},
			"listenerName":  &graphql.Field{Type: graphql.String},
			"listenTimeUtc": &graphql.Field{Type: dateTimeType},
			"note":          &graphql.Field{Type: graphql.String},
			"ianaTimezone":  &graphql.Field{Type: graphql.String},
		},
	})

	edgeType := graphql.NewObject(graphql.ObjectConfig{
		Name: "ListenEdge",
		Fields: graphql.Fields{
			"node": &graphql.Field{
				Type: listenType,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					edge, ok := p.Source.(listens.Edge)
					if !ok {
						return nil, fmt.Errorf("node resolver: unexpected source %T", p.Source)
					}
					return edge.Listen, nil
				},
			},
			"cursor": &graphql.Field{Type: dateTimeType},
		},
	})

	pageInfoType := graphql.NewObject(graphql.ObjectConfig{
		Name: "PageInfo",
		Fields: graphql.Fields{
			"hasNextPage":     &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"hasPreviousPage": &graphql.Field{Type: graphql.NewNonNull(graphql.Boolean)},
			"startCursor":     &graphql.Field{Type: dateTimeType},
			"endCursor":       &graphql.Field{Type: dateTimeType},
		},
	})

	connectionType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "ListenConnection",
		Description: "A cursor-paginated run of listens, always oldest-first.",
		Fields: graphql.Fields{
			"edges": &graphql.Field{Type: graphql.NewList(edgeType)},
			"pageInfo": &graphql.Field{
				Type: graphql.NewNonNull(pageInfoType),
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source, nil
				},
			},
		},
	})

	sunlightWindowType := graphql.NewObject(graphql.ObjectConfig{
		Name:        "SunlightWindow",
		Description: "Sunrise and sunset UTC times for a location on a date.",
		Fields: graphql.Fields{
			"sunriseUtc": &graphql.Field{Type: graphql.NewNonNull(dateTimeType)},
			"sunsetUtc":  &graphql.Field{Type: graphql.NewNonNull(dateTimeType)},
		},
	})

	listenInputType := graphql.NewInputObject(graphql.InputObjectConfig{
		Name: "ListenInput",
		Fields: graphql.InputObjectConfigFieldMap{
			"songId": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"songProvider": &graphql.InputObjectFieldConfig{
				Type:         musicProviderEnum,
				DefaultValue: domain.MusicProviderSpotify,
			},
			"listenerName": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
			"note":         &graphql.InputObjectFieldConfig{Type: graphql.String},
			"ianaTimezone": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"listen": &graphql.Field{
				Type:        listenType,
				Description: "One listen by id.",
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					id, _ := p.Args["id"].(string)
					return listensSvc.GetListen(p.Context, id)
				},
			},
			"allListens": &graphql.Field{
				Type:        connectionType,
				Description: "Listens with cursor pagination. Cursors are listen times; before/after bounds are exclusive.",
				Args: graphql.FieldConfigArgument{
					"first":  &graphql.ArgumentConfig{Type: graphql.Int},
					"last":   &graphql.ArgumentConfig{Type: graphql.Int},
					"before": &graphql.ArgumentConfig{Type: dateTimeType},
					"after":  &graphql.ArgumentConfig{Type: dateTimeType},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return listensSvc.GetPage(p.Context, listens.PageArgs{
						First:  intArg(p.Args, "first"),
						Last:   intArg(p.Args, "last"),
						Before: timeArg(p.Args, "before"),
						After:  timeArg(p.Args, "after"),
					})
				},
			},
			"sunlightWindow": &graphql.Field{
				Type:        sunlightWindowType,
				Description: "The sunrise/sunset window for a timezone on a date.",
				Args: graphql.FieldConfigArgument{
					"ianaTimezone": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"onDate":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(dateType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					tz, _ := p.Args["ianaTimezone"].(string)
					onDate, ok := p.Args["onDate"].(time.Time)
					if !ok {
						return nil, fmt.Errorf("sunlightWindow: onDate is not a date")
					}
					return sunlightSvc.GetWindow(p.Context, tz, onDate)
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"submitListen": &graphql.Field{
				Type:        listenType,
				Description: "Submit a listen. The listens service enforces submission policy.",
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(listenInputType)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					raw, ok := p.Args["input"].(map[string]interface{})
					if !ok {
						return nil, fmt.Errorf("submitListen: input is not an object")
					}
					return listensSvc.SubmitListen(p.Context, listenInputFromArgs(raw))
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// resolveListenSong resolves Listen.song through the per-request loader.
// It runs only when the field was selected, so a query without song touches
// the catalog zero times.
func resolveListenSong(p graphql.ResolveParams) (interface{}, error) {
	listen, ok := p.Source.(domain.Listen)
	if !ok {
		return nil, fmt.Errorf("song resolver: unexpected source %T", p.Source)
	}

	thunk := dataloader.FromContext(p.Context).SongByListen.Load(p.Context, dataloader.SongKey{
		SongID:   listen.SongID,
		Provider: listen.SongProvider,
	})
	song, err := thunk()
	if err != nil {
		return nil, err
	}
	return song, nil
}

func resolveSongImage(size domain.ImageSize) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (interface{}, error) {
		song, ok := p.Source.(domain.Song)
		if !ok {
			return nil, fmt.Errorf("image resolver: unexpected source %T", p.Source)
		}
		url, ok := song.ImageURLBySize[size]
		if !ok {
			return nil, nil
		}
		return url, nil
	}
}

func listenInputFromArgs(raw map[string]interface{}) domain.ListenInput {
	input := domain.ListenInput{SongProvider: domain.MusicProviderSpotify}
	if v, ok := raw["songId"].(string); ok {
		input.SongID = v
	}
	if v, ok := raw["songProvider"].(domain.MusicProvider); ok {
		input.SongProvider = v
	}
	if v, ok := raw["listenerName"].(string); ok {
		input.ListenerName = v
	}
	if v, ok := raw["note"].(string); ok {
		input.Note = &v
	}
	if v, ok := raw["ianaTimezone"].(string); ok {
		input.IANATimezone = v
	}
	return input
}

func intArg(args map[string]interface{}, name string) *int {
	if v, ok := args[name].(int); ok {
		return &v
	}
	return nil
}

func timeArg(args map[string]interface{}, name string) *time.Time {
	if v, ok := args[name].(time.Time); ok {
		return &v
	}
	return nil
}
