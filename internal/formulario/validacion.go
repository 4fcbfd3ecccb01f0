package formulario

import (
	"strings"

	"github.com/LBGeo/gestion-repuestos/internal/models"
)

// Violaciones mapea campo -> motivo.
type Violaciones map[string]string

func (v Violaciones) Vacio() bool { return len(v) == 0 }

func requerido(campo, valor string, v Violaciones) {
	if strings.TrimSpace(valor) == "" {
		v[campo] = "requerido"
	}
}

func requeridoNum(campo string, valor int, v Violaciones) {
	if valor == 0 {
		v[campo] = "requerido"
	}
}

func requeridoID(campo string, id uint, v Violaciones) {
	if id == 0 {
		v[campo] = "requerido"
	}
}

func ValidarCliente(c models.Cliente) Violaciones {
	v := Violaciones{}
	requerido("nombre", c.Nombre, v)
	requerido("apellido", c.Apellido, v)
	requerido("telefono", c.Telefono, v)
	requerido("email", c.Email, v)
	requerido("direccion", c.Direccion, v)
	requerido("nro_documento", c.NroDocumento, v)
	return v
}

func ValidarProveedor(p models.Proveedor) Violaciones {
	v := Violaciones{}
	requerido("nombre", p.Nombre, v)
	requerido("direccion", p.Direccion, v)
	requerido("telefono", p.Telefono, v)
	requerido("email", p.Email, v)
	return v
}

func ValidarRepuesto(r models.Repuesto) Violaciones {
	v := Violaciones{}
	requerido("marca_auto", r.MarcaAuto, v)
	requerido("modelo_auto", r.ModeloAuto, v)
	requerido("codigo_OEM_original", r.CodigoOEMOriginal, v)
	requerido("marca_OEM", r.MarcaOEM, v)
	requeridoNum("anio", r.Anio, v)
	requerido("motor", r.Motor, v)
	requeridoID("id_proveedor", r.IDProveedor, v)
	return v
}

func ValidarEquivalencia(e models.Equivalencia) Violaciones {
	v := Violaciones{}
	requerido("codigo_OEM_original", e.CodigoOEMOriginal, v)
	requerido("codigo_OEM_equivalente", e.CodigoOEMEquivalente, v)
	return v
}

func ValidarUsuario(u models.Usuario) Violaciones {
	v := Violaciones{}
	requerido("nombre", u.Nombre, v)
	requerido("apellido", u.Apellido, v)
	requerido("email", u.Email, v)
	requerido("rol", u.Rol, v)
	return v
}

func ValidarVenta(r models.RegistroVenta) Violaciones {
	v := Violaciones{}
	requeridoID("id_cliente", r.IDCliente, v)
	requeridoID("id_repuesto", r.IDRepuesto, v)
	requeridoNum("cantidad", r.Cantidad, v)
	requerido("fecha_venta", r.FechaVenta, v)
	return v
}

func ValidarRegistro(r models.Registro) Violaciones {
	v := Violaciones{}
	requeridoID("id_registro_venta", r.IDRegistroVenta, v)
	requeridoID("id_repuesto", r.IDRepuesto, v)
	requeridoNum("cantidad", r.Cantidad, v)
	requerido("tipo_act", r.TipoAct, v)
	return v
}
