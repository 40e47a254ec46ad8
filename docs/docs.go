// Package docs registra el documento OpenAPI servido en /swagger/*.
// Regenerar con: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {"get": {"tags": ["ops"], "summary": "Health check", "produces": ["text/plain"], "responses": {"200": {"description": "ok"}, "503": {"description": "store no disponible"}}}},
        "/api/animals": {
            "get": {"tags": ["animals"], "summary": "Listar animales", "parameters": [
                {"type": "string", "name": "species", "in": "query"},
                {"type": "string", "name": "status", "in": "query"},
                {"type": "string", "name": "gender", "in": "query"},
                {"type": "string", "name": "breed", "in": "query"}
            ], "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["animals"], "summary": "Registrar animal", "responses": {"201": {"description": "Created"}, "400": {"description": "validación"}}}
        },
        "/api/animals/species-breeds": {"get": {"tags": ["animals"], "summary": "Catálogo de especies y razas", "responses": {"200": {"description": "OK"}}}},
        "/api/animals/{animalID}": {
            "get": {"tags": ["animals"], "summary": "Obtener animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "id inválido"}, "404": {"description": "animal no encontrado"}}},
            "put": {"tags": ["animals"], "summary": "Actualizar animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}, "400": {"description": "sin campos / validación"}, "404": {"description": "animal no encontrado"}}},
            "delete": {"tags": ["animals"], "summary": "Borrar animal", "parameters": [{"type": "string", "name": "animalID", "in": "path", "required": true}], "responses": {"204": {"description": "No Content"}}}
        },
        "/api/animals/{animalID}/volunteers/{volunteerID}": {
            "post": {"tags": ["animals"], "summary": "Asignar voluntario", "responses": {"200": {"description": "OK"}, "404": {"description": "no encontrado"}}},
            "delete": {"tags": ["animals"], "summary": "Quitar voluntario", "responses": {"200": {"description": "OK"}}}
        },
        "/api/animals/{animalID}/matching-volunteers": {"get": {"tags": ["volunteers"], "summary": "Voluntarios sugeridos para un animal", "responses": {"200": {"description": "OK"}}}},
        "/api/adopters": {
            "get": {"tags": ["adopters"], "summary": "Listar adoptantes", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["adopters"], "summary": "Registrar adoptante", "responses": {"201": {"description": "Created"}}}
        },
        "/api/adopters/{adopterID}": {
            "get": {"tags": ["adopters"], "summary": "Obtener adoptante", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["adopters"], "summary": "Actualizar adoptante", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["adopters"], "summary": "Borrar adoptante", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/adoptions": {
            "get": {"tags": ["adoptions"], "summary": "Listar adopciones", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["adoptions"], "summary": "Registrar adopción", "description": "Marca el animal como Adopted.", "responses": {"201": {"description": "Created"}, "404": {"description": "animal o adoptante no encontrado"}}}
        },
        "/api/adoptions/{adoptionID}": {
            "get": {"tags": ["adoptions"], "summary": "Obtener adopción", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["adoptions"], "summary": "Actualizar adopción", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["adoptions"], "summary": "Borrar adopción", "description": "Devuelve el animal a Available.", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/search/adopter/{adopterID}": {"get": {"tags": ["adoptions"], "summary": "Animales adoptados por un adoptante", "responses": {"200": {"description": "OK"}}}},
        "/api/medical-records": {
            "get": {"tags": ["medical"], "summary": "Listar registros médicos", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["medical"], "summary": "Registrar visita", "responses": {"201": {"description": "Created"}, "404": {"description": "animal no encontrado"}}}
        },
        "/api/medical-records/{recordID}": {
            "get": {"tags": ["medical"], "summary": "Obtener registro", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["medical"], "summary": "Actualizar registro", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["medical"], "summary": "Borrar registro", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/search/medical/{animalID}": {"get": {"tags": ["medical"], "summary": "Historial médico de un animal", "responses": {"200": {"description": "OK"}}}},
        "/api/volunteers": {
            "get": {"tags": ["volunteers"], "summary": "Listar voluntarios", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["volunteers"], "summary": "Registrar voluntario", "responses": {"201": {"description": "Created"}}}
        },
        "/api/volunteers/skills": {"get": {"tags": ["volunteers"], "summary": "Vocabulario de habilidades", "responses": {"200": {"description": "OK"}}}},
        "/api/volunteers/{volunteerID}": {
            "get": {"tags": ["volunteers"], "summary": "Obtener voluntario", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["volunteers"], "summary": "Actualizar voluntario", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["volunteers"], "summary": "Borrar voluntario", "description": "Quita el id de assigned_volunteers de todos los animales.", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/volunteers/{volunteerID}/matches": {"get": {"tags": ["volunteers"], "summary": "Animales sugeridos para un voluntario", "responses": {"200": {"description": "OK"}}}},
        "/api/volunteer-activities": {
            "get": {"tags": ["activities"], "summary": "Listar actividades", "responses": {"200": {"description": "OK"}}},
            "post": {"tags": ["activities"], "summary": "Registrar actividad", "responses": {"201": {"description": "Created"}}}
        },
        "/api/volunteer-activities/types": {"get": {"tags": ["activities"], "summary": "Tipos de actividad", "responses": {"200": {"description": "OK"}}}},
        "/api/volunteer-activities/stats/summary": {"get": {"tags": ["activities"], "summary": "Resumen de horas y actividades", "responses": {"200": {"description": "OK"}}}},
        "/api/volunteer-activities/{activityID}": {
            "get": {"tags": ["activities"], "summary": "Obtener actividad", "responses": {"200": {"description": "OK"}}},
            "put": {"tags": ["activities"], "summary": "Actualizar actividad", "responses": {"200": {"description": "OK"}}},
            "delete": {"tags": ["activities"], "summary": "Borrar actividad", "responses": {"204": {"description": "No Content"}}}
        },
        "/api/dashboard/stats": {"get": {"tags": ["dashboard"], "summary": "Totales del refugio", "responses": {"200": {"description": "OK"}, "503": {"description": "store no disponible"}}}},
        "/charts/species": {"get": {"tags": ["charts"], "summary": "Distribución por especie", "responses": {"200": {"description": "OK"}}}},
        "/charts/status": {"get": {"tags": ["charts"], "summary": "Distribución por estado", "responses": {"200": {"description": "OK"}}}},
        "/charts/breed": {"get": {"tags": ["charts"], "summary": "Distribución por raza", "responses": {"200": {"description": "OK"}}}},
        "/charts/gender-distribution": {"get": {"tags": ["charts"], "summary": "Distribución por sexo", "responses": {"200": {"description": "OK"}}}},
        "/charts/age-distribution": {"get": {"tags": ["charts"], "summary": "Distribución por edad", "responses": {"200": {"description": "OK"}}}},
        "/charts/adoptions": {"get": {"tags": ["charts"], "summary": "Adopciones por mes", "parameters": [
            {"type": "string", "name": "start_date", "in": "query"},
            {"type": "string", "name": "end_date", "in": "query"}
        ], "responses": {"200": {"description": "OK"}, "400": {"description": "rango inválido"}}}},
        "/charts/medical-visits": {"get": {"tags": ["charts"], "summary": "Visitas médicas por mes", "responses": {"200": {"description": "OK"}, "400": {"description": "rango inválido"}}}},
        "/charts/medical-visits-by-species": {"get": {"tags": ["charts"], "summary": "Visitas médicas por especie", "responses": {"200": {"description": "OK"}}}},
        "/charts/medical-visits-by-breed": {"get": {"tags": ["charts"], "summary": "Visitas médicas por raza", "responses": {"200": {"description": "OK"}}}},
        "/predictions": {"get": {"tags": ["predictions"], "summary": "Predicciones de animales disponibles", "responses": {"200": {"description": "OK"}}}},
        "/predictions/train": {"post": {"tags": ["predictions"], "summary": "Entrenar modelos", "responses": {"200": {"description": "OK"}, "503": {"description": "store no disponible"}}}},
        "/predictions/animal/{animalID}": {"get": {"tags": ["predictions"], "summary": "Predicción de un animal", "responses": {"200": {"description": "OK"}, "404": {"description": "animal no encontrado"}, "422": {"description": "categoría no vista al entrenar"}}}},
        "/predictions/model-status": {"get": {"tags": ["predictions"], "summary": "Estado de los modelos", "responses": {"200": {"description": "OK"}}}},
        "/predictions/feature-importance": {"get": {"tags": ["predictions"], "summary": "Importancia de factores", "responses": {"200": {"description": "OK"}, "404": {"description": "modelo no entrenado"}}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Pet Shelter API",
	Description:      "Gestión de refugio: animales, adopciones, historial médico, voluntarios, gráficos y predicciones.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
