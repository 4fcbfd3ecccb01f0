package consola

type Entrada struct {
	Ruta     string `json:"ruta"`
	Etiqueta string `json:"etiqueta"`
}

// Navegacion es el menú lateral, en orden.
var Navegacion = []Entrada{
	{Ruta: "/", Etiqueta: "Dashboard"},
	{Ruta: "/clientes", Etiqueta: "Clientes"},
	{Ruta: "/repuestos", Etiqueta: "Repuestos"},
	{Ruta: "/proveedores", Etiqueta: "Proveedores"},
	{Ruta: "/ventas", Etiqueta: "Ventas"},
	{Ruta: "/equivalencias", Etiqueta: "Equivalencias"},
	{Ruta: "/registros", Etiqueta: "Registros"},
	{Ruta: "/usuarios", Etiqueta: "Usuarios"},
}
