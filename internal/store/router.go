package store

import (
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Modelos lista las tablas que migra cmd/store.
var Modelos = []any{
	&models.Cliente{},
	&models.Proveedor{},
	&models.Equivalencia{},
	&models.Repuesto{},
	&models.Usuario{},
	&models.RegistroVenta{},
	&models.Registro{},
}

// NewRouter arma las rutas REST de las siete colecciones.
func NewRouter(db *gorm.DB) *mux.Router {
	r := mux.NewRouter()

	clientes := NewHandler(NewRepositorio[models.Cliente](db), "clientes")
	proveedores := NewHandler(NewRepositorio[models.Proveedor](db), "proveedores")
	equivalencias := NewHandler(NewRepositorio[models.Equivalencia](db), "equivalencias")
	usuarios := NewHandler(NewRepositorio[models.Usuario](db), "usuarios")

	repuestos := NewHandler(NewRepositorio[models.Repuesto](db), "repuestos")
	repuestos.Validar = validarRepuesto(db)

	ventas := NewHandler(NewRepositorio[models.RegistroVenta](db), "registrosventas")
	ventas.Validar = validarVenta(db)

	registros := NewHandler(NewRepositorio[models.Registro](db), "registros")
	registros.Validar = validarRegistro(db)

	r.HandleFunc("/equivalencias/search",
		equivalencias.Buscar("codigo", "codigo_oem_original", "codigo_oem_equivalente")).Methods("GET")
	r.HandleFunc("/repuestos/search",
		repuestos.Buscar("codigo_oem", "codigo_oem_original")).Methods("GET")

	clientes.Registrar(r)
	proveedores.Registrar(r)
	equivalencias.Registrar(r)
	usuarios.Registrar(r)
	repuestos.Registrar(r)
	ventas.Registrar(r)
	registros.Registrar(r)

	return r
}
